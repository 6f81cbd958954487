package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clinicsync/internal/client/storage"
)

var keySyncReport = []byte("last_sync_report")

// SaveSyncReport saves the summary of the last completed sync cycle
func (s *Storage) SaveSyncReport(ctx context.Context, report *storage.SyncReport) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal sync report: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketMetadata).Put(keySyncReport, data); err != nil {
			return fmt.Errorf("failed to save sync report: %w", err)
		}
		return nil
	})
}

// GetSyncReport retrieves the summary of the last completed sync cycle
func (s *Storage) GetSyncReport(ctx context.Context) (*storage.SyncReport, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var report *storage.SyncReport

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get(keySyncReport)
		if data == nil {
			// Синхронизации еще не было
			return nil
		}

		report = &storage.SyncReport{}
		return json.Unmarshal(data, report)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sync report: %w", err)
	}

	return report, nil
}
