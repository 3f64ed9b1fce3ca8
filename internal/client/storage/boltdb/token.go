package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stravasync/internal/client/storage"
)

var tokenKey = []byte("current")

// SaveToken stores the current token pair, replacing any previous one
func (s *Storage) SaveToken(ctx context.Context, token *storage.TokenData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(token)
		if err != nil {
			return fmt.Errorf("failed to marshal token data: %w", err)
		}

		if err := bucket.Put(tokenKey, data); err != nil {
			return fmt.Errorf("failed to save token data: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the cached token pair
func (s *Storage) GetToken(ctx context.Context) (*storage.TokenData, error) {
	var token *storage.TokenData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = &storage.TokenData{}
		if err := json.Unmarshal(data, token); err != nil {
			return fmt.Errorf("failed to unmarshal token data: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// DeleteToken removes the cached token pair (logout)
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(tokenKey) == nil {
			return storage.ErrTokenNotFound
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token data: %w", err)
		}

		return nil
	})
}
