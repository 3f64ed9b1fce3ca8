package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// SyncStamp фиксирует итог последнего успешного запуска sync —
// для команды status и диагностики.
type SyncStamp struct {
	LogPath    string `json:"log_path"`
	RanAt      int64  `json:"ran_at"` // unix время завершения запуска
	NewEntries int    `json:"new_entries"`
	Updated    int    `json:"updated"`
	CallsUsed  int    `json:"calls_used"`
}

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveSyncStamp records the outcome of the last successful sync
	SaveSyncStamp(ctx context.Context, stamp *SyncStamp) error

	// GetSyncStamp retrieves the last recorded sync outcome
	// Returns ErrSyncStampNotFound if no sync has been recorded
	GetSyncStamp(ctx context.Context) (*SyncStamp, error)
}
