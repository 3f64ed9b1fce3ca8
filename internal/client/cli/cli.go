package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	httpClient "github.com/iudanet/stravasync/internal/client/api"
	"github.com/iudanet/stravasync/internal/client/iocli"
	"github.com/iudanet/stravasync/internal/client/storage"
	"github.com/iudanet/stravasync/internal/config"
)

// Cli связывает команды с их зависимостями. Сервисы (auth, sync)
// создаются внутри команд — им нужны разные наборы зависимостей.
type Cli struct {
	apiClient httpClient.ClientAPI
	tokens    storage.TokenStorage
	metadata  storage.MetadataStorage
	io        iocli.IO
	cfg       *config.Config
	logger    *slog.Logger
}

func New(apiClient httpClient.ClientAPI, tokens storage.TokenStorage, metadata storage.MetadataStorage, io iocli.IO, cfg *config.Config, logger *slog.Logger) *Cli {
	return &Cli{
		apiClient: apiClient,
		tokens:    tokens,
		metadata:  metadata,
		io:        io,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run выполняет команду. allHistory относится только к sync.
func (c *Cli) Run(ctx context.Context, command string, allHistory bool) {
	switch command {
	case "sync":
		if err := c.runSync(ctx, allHistory); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "authorize":
		if err := c.runAuthorize(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "status":
		if err := c.runStatus(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "logout":
		if err := c.runLogout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("stravasync — Strava activity log synchronizer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  stravasync [OPTIONS] [COMMAND]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --log PATH       Path to the activity log file (default: entrenamientos_contexto.txt)")
	fmt.Println("  --db PATH        Path to the local token cache (default: stravasync.db)")
	fmt.Println("  --api URL        API base URL override")
	fmt.Println("  --all            Sync the full activity history, not just the most recent batch")
	fmt.Println("  --budget N       Max outbound API calls per run (default: 90)")
	fmt.Println("  --verbose        Debug logging")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  STRAVA_CLIENT_ID      OAuth application client id (required)")
	fmt.Println("  STRAVA_CLIENT_SECRET  OAuth application client secret (required)")
	fmt.Println("  STRAVA_REFRESH_TOKEN  Refresh token; optional once 'authorize' has run")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync       Fetch activities and reconcile the text log (default)")
	fmt.Println("  authorize  Interactive first-time OAuth authorization")
	fmt.Println("  status     Show token cache state and last sync outcome")
	fmt.Println("  logout     Drop cached tokens")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  stravasync authorize")
	fmt.Println("  stravasync")
	fmt.Println("  stravasync --all sync")
	fmt.Println("  stravasync --log ~/training/log.txt sync")
}
