package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stravasync/internal/client/auth"
	"github.com/iudanet/stravasync/internal/client/storage"
	"github.com/iudanet/stravasync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context, allHistory bool) error {
	fmt.Println("=== Synchronization ===")

	// Ошибка авторизации фатальна для запуска: выходим до любых
	// обращений к файлу лога
	authService := auth.NewService(c.apiClient, c.tokens, c.cfg.ClientID, c.cfg.ClientSecret, c.cfg.RefreshToken, c.logger)
	accessToken, err := authService.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	fmt.Println()
	fmt.Println("Fetching activities...")

	syncService := sync.NewService(c.apiClient, c.cfg, c.logger)
	result, err := syncService.Sync(ctx, accessToken, allHistory)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	fmt.Println()
	if result.Changed {
		fmt.Println("✓ Synchronization completed successfully!")
	} else {
		fmt.Println("✓ Log is already up to date.")
	}
	fmt.Println()
	fmt.Printf("Fetched:    %d activities\n", result.Fetched)
	fmt.Printf("New:        %d entries\n", result.NewEntries)
	fmt.Printf("Updated:    %d entries\n", result.Updated)
	fmt.Printf("Unchanged:  %d entries\n", result.Unchanged)
	if result.Excluded > 0 {
		fmt.Printf("Excluded:   %d activities\n", result.Excluded)
	}
	fmt.Printf("API calls:  %d\n", result.CallsUsed)
	if result.StoppedEarly {
		fmt.Println()
		fmt.Println("Call budget was exhausted before the whole batch was processed.")
		fmt.Println("Run again to pick up the remaining activities.")
	}

	// Итог запуска — в кэш, для команды status. Ошибка не портит
	// сам результат синхронизации.
	stamp := &storage.SyncStamp{
		LogPath:    c.cfg.LogPath,
		RanAt:      time.Now().Unix(),
		NewEntries: result.NewEntries,
		Updated:    result.Updated,
		CallsUsed:  result.CallsUsed,
	}
	if err := c.metadata.SaveSyncStamp(ctx, stamp); err != nil {
		c.logger.Warn("Failed to save sync stamp", "error", err)
	}

	return nil
}
