package storage

import (
	"context"

	"github.com/iudanet/clinicsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage is the local store for synchronized records. Every method
// runs in its own transaction.
type RecordStorage interface {
	// FindByID returns the record of the given kind with the given ID
	// Returns ErrRecordNotFound if there is none
	FindByID(ctx context.Context, kind models.Kind, id string) (models.Record, error)

	// QueryDirty returns all dirty records of the given kind ordered by
	// UpdatedAt, then ID
	QueryDirty(ctx context.Context, kind models.Kind) ([]models.Record, error)

	// List returns all records of the given kind ordered by UpdatedAt, then ID
	List(ctx context.Context, kind models.Kind) ([]models.Record, error)

	// Upsert writes rec under its own ID
	Upsert(ctx context.Context, rec models.Record) error

	// Replace removes the record stored under previousID, writes rec under
	// its own ID and rewrites references to previousID held by other kinds
	Replace(ctx context.Context, previousID string, rec models.Record) error

	// CountDirty returns the number of dirty records across all kinds
	CountDirty(ctx context.Context) (int, error)
}
