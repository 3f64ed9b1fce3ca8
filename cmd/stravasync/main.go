package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	httpClient "github.com/iudanet/stravasync/internal/client/api"
	"github.com/iudanet/stravasync/internal/client/cli"
	"github.com/iudanet/stravasync/internal/client/iocli"
	"github.com/iudanet/stravasync/internal/client/storage/boltdb"
	"github.com/iudanet/stravasync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	logPath := flag.String("log", config.DefaultLogPath, "Path to the activity log file")
	dbPath := flag.String("db", config.DefaultDBPath, "Path to the local token cache")
	apiURL := flag.String("api", config.DefaultAPIURL, "API base URL")
	allHistory := flag.Bool("all", false, "Sync the full activity history")
	budget := flag.Int("budget", config.DefaultCallBudget, "Max outbound API calls per run")
	throttle := flag.Duration("throttle", config.DefaultThrottle, "Pause between enrichment calls")
	verbose := flag.Bool("verbose", false, "Debug logging")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Команда; без аргумента — обычная синхронизация
	command := "sync"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	// Собираем конфигурацию: учетные данные из окружения, остальное из флагов
	cfg := config.New()
	cfg.LogPath = *logPath
	cfg.DBPath = *dbPath
	cfg.APIURL = *apiURL
	cfg.CallBudget = *budget
	cfg.Throttle = *throttle

	// Отсутствие учетных данных — фатальная ошибка старта.
	// Для authorize secret может быть введен интерактивно.
	if command != "authorize" {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else if cfg.ClientID == "" {
		fmt.Fprintf(os.Stderr, "Error: missing credentials: %s is not set\n", config.EnvClientID)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()

	// Открываем BoltDB storage (кэш токенов + метаданные)
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := httpClient.NewClient(cfg.AuthURL, cfg.APIURL)

	// boltStorage реализует и TokenStorage, и MetadataStorage
	c := cli.New(apiClient, boltStorage, boltStorage, iocli.NewStdio(), cfg, logger)
	c.Run(ctx, command, *allHistory)
}

func printVersion() {
	fmt.Printf("stravasync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
