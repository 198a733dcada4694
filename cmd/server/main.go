package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iudanet/sisadmin/internal/config"
	"github.com/iudanet/sisadmin/internal/logging"
	"github.com/iudanet/sisadmin/internal/server"
	"github.com/iudanet/sisadmin/internal/server/handlers"
	"github.com/iudanet/sisadmin/internal/server/middleware"
	"github.com/iudanet/sisadmin/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	showVersion := flag.Bool("version", false, "Show version information")
	showEnv := flag.Bool("env", false, "Show supported environment variables")
	configPath := flag.String("config", "", "Path to YAML config file")
	address := flag.String("address", "", "Listen address (overrides config)")
	dsn := flag.String("db", "", "Path to SQLite database (overrides config)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return nil
	}
	if *showEnv {
		fmt.Println(config.Description(&config.Server{}))
		return nil
	}

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *address != "" {
		cfg.HTTP.Address = *address
	}
	if *dsn != "" {
		cfg.Storage.DSN = *dsn
	}

	logger := logging.New(cfg.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(ctx, cfg.Storage.DSN)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	var limiter *middleware.RateLimiter
	if !cfg.RateLimit.Disabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, time.Minute, logger)
		defer limiter.Stop()
	}

	router := server.NewRouter(server.Deps{
		Logger:      logger,
		Users:       db,
		DB:          db,
		AuthLimiter: limiter,
		JWT: handlers.JWTConfig{
			Secret:         []byte(cfg.Token.Secret),
			Issuer:         cfg.Token.Issuer,
			AccessTokenTTL: cfg.Token.TTL,
		},
		Version: Version,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("address", cfg.HTTP.Address), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("SIS Admin Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
