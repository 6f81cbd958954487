package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/models"
)

var (
	// BoltDB bucket names
	bucketAuth     = []byte("auth")
	bucketMetadata = []byte("metadata")

	recordBuckets = map[models.Kind][]byte{
		models.KindClient:       []byte("clients"),
		models.KindSession:      []byte("sessions"),
		models.KindProgressNote: []byte("progress_notes"),
	}
)

// Проверка соответствия интерфейсам
var (
	_ storage.AuthStorage     = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
	_ storage.RecordStorage   = (*Storage)(nil)
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		for _, kind := range models.Kinds {
			if _, err := tx.CreateBucketIfNotExists(recordBuckets[kind]); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", kind, err)
			}
		}
		return nil
	})
}
