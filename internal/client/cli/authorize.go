package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stravasync/internal/client/auth"
)

// runAuthorize проводит первичную OAuth авторизацию: пользователь
// открывает страницу согласия в браузере, копирует code из redirect URL,
// команда обменивает его на токены и кладет их в кэш.
func (c *Cli) runAuthorize(ctx context.Context) error {
	c.io.Println("=== Authorization ===")
	c.io.Println()

	clientSecret := c.cfg.ClientSecret
	if clientSecret == "" {
		secret, err := c.io.ReadSecret("Client secret: ")
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
		if secret == "" {
			return fmt.Errorf("client secret cannot be empty")
		}
		clientSecret = secret
	}

	c.io.Println("Visit the following URL in your browser to authorize the app:")
	c.io.Println()
	c.io.Println(auth.AuthorizationURL(c.cfg.ClientID))
	c.io.Println()
	c.io.Println("After clicking 'Authorize' you will be redirected to a page")
	c.io.Println("that may fail to load — that's fine. Copy the value of the")
	c.io.Println("'code' parameter from the address bar:")
	c.io.Println("  http://localhost/exchange_token?state=&code=YOUR_CODE&scope=activity:read")
	c.io.Println()

	code, err := c.io.ReadInput("Enter the 'code' parameter: ")
	if err != nil {
		return fmt.Errorf("failed to read code: %w", err)
	}
	if code == "" {
		return fmt.Errorf("code cannot be empty")
	}

	c.io.Println()
	c.io.Println("Exchanging code for tokens...")

	authService := auth.NewService(c.apiClient, c.tokens, c.cfg.ClientID, clientSecret, "", c.logger)
	token, err := authService.Authorize(ctx, code)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Authorization successful!")
	c.io.Printf("Access token expires at: %s\n", time.Unix(token.ExpiresAt, 0).Format(time.RFC1123))
	c.io.Println()
	c.io.Println("Tokens are cached locally; 'stravasync sync' will refresh them as needed.")

	return nil
}
