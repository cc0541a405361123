package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/varmintworks/varmint-server/internal/account"
	"github.com/varmintworks/varmint-server/internal/bootstrap"
	"github.com/varmintworks/varmint-server/internal/catalog"
	"github.com/varmintworks/varmint-server/internal/config"
	"github.com/varmintworks/varmint-server/internal/database"
	"github.com/varmintworks/varmint-server/internal/progress"
	"github.com/varmintworks/varmint-server/internal/server"
)

// Database pool tuning. Saves are short transactions, so idle connections
// can be recycled aggressively.
const (
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	connString := cfg.GetDBConnString()

	if err := database.Migrate(connString); err != nil {
		return err
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	catalogService := catalog.NewService(repos.Catalog)
	accountService := account.NewService(repos.Account)
	progressService := progress.NewService(repos.Account, repos.Progress, catalogService)

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := bootstrap.SyncCatalog(startupCtx, catalogService, cfg.CatalogConfig); err != nil {
		return err
	}

	srv := server.NewServer(cfg.Port, cfg.CORSAllowedOrigins, dbPool, accountService, progressService, catalogService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})

	return nil
}
