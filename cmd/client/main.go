package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iudanet/sisadmin/internal/client/api"
	"github.com/iudanet/sisadmin/internal/client/cli"
	"github.com/iudanet/sisadmin/internal/client/iocli"
	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/storage/boltdb"
	"github.com/iudanet/sisadmin/internal/config"
	"github.com/iudanet/sisadmin/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env")

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local session database (overrides config)")

	flag.Parse()

	stdio := iocli.NewStdio()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	// Флаги важнее конфига
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	// Логи идут в stderr, чтобы не смешиваться с выводом команд
	logger := logging.New(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.RequestTimeout), api.WithLogger(logger))
	sess := session.NewSession(boltStorage, logger)

	app := cli.New(stdio, apiClient, sess, logger, cli.Config{RedirectDelay: cfg.RedirectDelay})

	// Выполняем команду
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) || errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			cli.PrintUsage(stdio)
		}
		logger.Debug("command failed", "command", args[0], "error", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("SIS Admin Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
