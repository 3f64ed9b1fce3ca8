package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stravasync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	token, err := c.tokens.GetToken(ctx)
	switch {
	case errors.Is(err, storage.ErrTokenNotFound):
		fmt.Println("Authorization: no cached tokens")
	case err != nil:
		return fmt.Errorf("failed to read token cache: %w", err)
	case token.Expired(time.Now()):
		fmt.Println("Authorization: access token expired (will refresh on next sync)")
	default:
		fmt.Printf("Authorization: valid until %s\n", time.Unix(token.ExpiresAt, 0).Format(time.RFC1123))
	}

	stamp, err := c.metadata.GetSyncStamp(ctx)
	switch {
	case errors.Is(err, storage.ErrSyncStampNotFound):
		fmt.Println("Last sync:     never")
	case err != nil:
		return fmt.Errorf("failed to read sync stamp: %w", err)
	default:
		fmt.Printf("Last sync:     %s\n", time.Unix(stamp.RanAt, 0).Format(time.RFC1123))
		fmt.Printf("  Log file:    %s\n", stamp.LogPath)
		fmt.Printf("  New:         %d\n", stamp.NewEntries)
		fmt.Printf("  Updated:     %d\n", stamp.Updated)
		fmt.Printf("  API calls:   %d\n", stamp.CallsUsed)
	}

	return nil
}
