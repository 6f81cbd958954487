package boltdb

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/models"
)

// FindByID returns the record of the given kind with the given ID
func (s *Storage) FindByID(ctx context.Context, kind models.Kind, id string) (models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var rec models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := recordBucket(tx, kind)
		if err != nil {
			return err
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec, err = decodeRecord(kind, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// QueryDirty returns all dirty records of the given kind
func (s *Storage) QueryDirty(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	return s.scan(kind, func(rec models.Record) bool {
		return rec.Meta().Dirty
	})
}

// List returns all records of the given kind
func (s *Storage) List(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	return s.scan(kind, nil)
}

// Upsert writes rec under its own ID
func (s *Storage) Upsert(ctx context.Context, rec models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", rec.Kind(), err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := recordBucket(tx, rec.Kind())
		if err != nil {
			return err
		}

		// Сохраняем по ID
		if err := bucket.Put([]byte(rec.Meta().ID), data); err != nil {
			return fmt.Errorf("failed to save %s: %w", rec.Kind(), err)
		}
		return nil
	})
}

// Replace moves a record from previousID to its current ID and rewrites
// references to it in the other buckets within one transaction
func (s *Storage) Replace(ctx context.Context, previousID string, rec models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	kind := rec.Kind()
	newID := rec.Meta().ID

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := recordBucket(tx, kind)
		if err != nil {
			return err
		}

		if previousID != newID {
			if err := bucket.Delete([]byte(previousID)); err != nil {
				return fmt.Errorf("failed to delete %s %s: %w", kind, previousID, err)
			}
		}
		if err := bucket.Put([]byte(newID), data); err != nil {
			return fmt.Errorf("failed to save %s: %w", kind, err)
		}

		if previousID == newID {
			return nil
		}

		for _, other := range models.Kinds {
			if other == kind {
				continue
			}
			if err := remapBucket(tx, other, kind, previousID, newID); err != nil {
				return err
			}
		}
		return nil
	})
}

// CountDirty returns the number of dirty records across all kinds
func (s *Storage) CountDirty(ctx context.Context) (int, error) {
	total := 0
	for _, kind := range models.Kinds {
		dirty, err := s.QueryDirty(ctx, kind)
		if err != nil {
			return 0, err
		}
		total += len(dirty)
	}
	return total, nil
}

func (s *Storage) scan(kind models.Kind, keep func(models.Record) bool) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := recordBucket(tx, kind)
		if err != nil {
			return err
		}

		return bucket.ForEach(func(k, v []byte) error {
			rec, err := decodeRecord(kind, v)
			if err != nil {
				return fmt.Errorf("failed to decode %s %s: %w", kind, k, err)
			}
			if keep == nil || keep(rec) {
				records = append(records, rec)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(records, func(a, b models.Record) int {
		if c := a.Meta().UpdatedAt.Compare(b.Meta().UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Meta().ID, b.Meta().ID)
	})

	return records, nil
}

// remapBucket переписывает ссылки на oldID в записях bucket'а kind
func remapBucket(tx *bbolt.Tx, kind, refKind models.Kind, oldID, newID string) error {
	bucket, err := recordBucket(tx, kind)
	if err != nil {
		return err
	}

	// bbolt не позволяет менять bucket внутри ForEach
	updates := map[string][]byte{}
	err = bucket.ForEach(func(k, v []byte) error {
		rec, err := decodeRecord(kind, v)
		if err != nil {
			return fmt.Errorf("failed to decode %s %s: %w", kind, k, err)
		}
		if !rec.RemapReference(refKind, oldID, newID) {
			return nil
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", kind, err)
		}
		updates[string(k)] = data
		return nil
	})
	if err != nil {
		return err
	}

	for k, data := range updates {
		if err := bucket.Put([]byte(k), data); err != nil {
			return fmt.Errorf("failed to update %s %s: %w", kind, k, err)
		}
	}
	return nil
}

func recordBucket(tx *bbolt.Tx, kind models.Kind) (*bbolt.Bucket, error) {
	name, ok := recordBuckets[kind]
	if !ok {
		return nil, fmt.Errorf("unknown record kind: %q", kind)
	}
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket not found", name)
	}
	return bucket, nil
}

func decodeRecord(kind models.Kind, data []byte) (models.Record, error) {
	rec, err := models.NewRecord(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", kind, err)
	}
	return rec, nil
}
