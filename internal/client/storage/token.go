package storage

import (
	"context"
	"time"
)

//go:generate moq -out token_mock.go . TokenStorage

// TokenData представляет кэшированную пару OAuth токенов.
// Access token живет около шести часов, refresh token ротируется при
// каждом обмене — в кэше всегда лежит последняя выданная пара.
type TokenData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix время истечения access token
	ObtainedAt   int64  `json:"obtained_at"`
}

// Expired проверяет, истек ли access token. Небольшой запас до
// фактического истечения, чтобы не уходить в API с токеном на последних
// секундах жизни.
func (t *TokenData) Expired(now time.Time) bool {
	const slack = 60 // секунд
	return now.Unix() >= t.ExpiresAt-slack
}

// TokenStorage defines interface for the local OAuth token cache
type TokenStorage interface {
	// SaveToken stores the current token pair, replacing any previous one
	SaveToken(ctx context.Context, token *TokenData) error

	// GetToken retrieves the cached token pair
	// Returns ErrTokenNotFound if nothing is cached
	GetToken(ctx context.Context) (*TokenData, error)

	// DeleteToken removes the cached token pair (logout)
	DeleteToken(ctx context.Context) error
}
