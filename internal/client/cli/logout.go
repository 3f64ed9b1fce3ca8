package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stravasync/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	err := c.tokens.DeleteToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			fmt.Println("No cached tokens to remove.")
			return nil
		}
		return fmt.Errorf("failed to delete tokens: %w", err)
	}

	fmt.Println("✓ Cached tokens removed.")
	return nil
}
