package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stravasync/internal/client/storage"
)

var syncStampKey = []byte("last_sync")

// SaveSyncStamp records the outcome of the last successful sync
func (s *Storage) SaveSyncStamp(ctx context.Context, stamp *storage.SyncStamp) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data, err := json.Marshal(stamp)
		if err != nil {
			return fmt.Errorf("failed to marshal sync stamp: %w", err)
		}

		if err := bucket.Put(syncStampKey, data); err != nil {
			return fmt.Errorf("failed to save sync stamp: %w", err)
		}

		return nil
	})
}

// GetSyncStamp retrieves the last recorded sync outcome
func (s *Storage) GetSyncStamp(ctx context.Context) (*storage.SyncStamp, error) {
	var stamp *storage.SyncStamp

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get(syncStampKey)
		if data == nil {
			return storage.ErrSyncStampNotFound
		}

		stamp = &storage.SyncStamp{}
		if err := json.Unmarshal(data, stamp); err != nil {
			return fmt.Errorf("failed to unmarshal sync stamp: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stamp, nil
}
