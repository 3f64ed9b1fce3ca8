package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/stravasync/internal/client/api"
	"github.com/iudanet/stravasync/internal/client/storage"
	"github.com/iudanet/stravasync/internal/config"
	"github.com/iudanet/stravasync/pkg/api"
)

func TestRunSync(t *testing.T) {
	cfg := config.New()
	cfg.ClientID = "12345"
	cfg.ClientSecret = "secret"
	cfg.LogPath = filepath.Join(t.TempDir(), "log.txt")
	cfg.Throttle = 0

	apiMock := &httpClient.ClientAPIMock{
		ListActivitiesFunc: func(ctx context.Context, accessToken string, page, perPage int) ([]api.SummaryActivity, error) {
			assert.Equal(t, "cached-access", accessToken)
			if page > 1 {
				return nil, nil
			}
			return []api.SummaryActivity{
				{ID: 10, SportType: "Run", StartDateLocal: "2026-02-07T10:00:00Z", Distance: 5000, MovingTime: 1500},
			}, nil
		},
		GetActivityFunc: func(ctx context.Context, accessToken string, id int64) (*api.DetailedActivity, error) {
			return &api.DetailedActivity{}, nil
		},
	}
	tokens := &storage.TokenStorageMock{
		GetTokenFunc: func(ctx context.Context) (*storage.TokenData, error) {
			return &storage.TokenData{
				AccessToken: "cached-access",
				ExpiresAt:   time.Now().Add(time.Hour).Unix(),
			}, nil
		},
	}
	var savedStamp *storage.SyncStamp
	metadata := &storage.MetadataStorageMock{
		SaveSyncStampFunc: func(ctx context.Context, stamp *storage.SyncStamp) error {
			savedStamp = stamp
			return nil
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	c := New(apiMock, tokens, metadata, silentIO(), cfg, logger)

	err := c.runSync(context.Background(), false)

	require.NoError(t, err)

	data, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!-- ID: 10 -->")

	// Итог запуска ушел в metadata для команды status
	require.NotNil(t, savedStamp)
	assert.Equal(t, cfg.LogPath, savedStamp.LogPath)
	assert.Equal(t, 1, savedStamp.NewEntries)
}

func TestRunSync_AuthFailureBeforeLogTouched(t *testing.T) {
	cfg := config.New()
	cfg.ClientID = "12345"
	cfg.ClientSecret = "secret"
	cfg.LogPath = filepath.Join(t.TempDir(), "log.txt")

	tokens := &storage.TokenStorageMock{
		GetTokenFunc: func(ctx context.Context) (*storage.TokenData, error) {
			return nil, storage.ErrTokenNotFound
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	c := New(&httpClient.ClientAPIMock{}, tokens, &storage.MetadataStorageMock{}, silentIO(), cfg, logger)

	err := c.runSync(context.Background(), false)

	require.ErrorContains(t, err, "authentication failed")

	// Без токена лог не создается
	_, statErr := os.Stat(cfg.LogPath)
	assert.True(t, os.IsNotExist(statErr))
}
