package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no cached OAuth tokens exist
	ErrTokenNotFound = errors.New("token data not found")

	// ErrSyncStampNotFound indicates that no sync has been recorded yet
	ErrSyncStampNotFound = errors.New("sync stamp not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
