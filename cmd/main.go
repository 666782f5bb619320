package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"autodm/internal/adapter/graph"
	httpadapter "autodm/internal/adapter/http"
	"autodm/internal/adapter/postgres"
	"autodm/internal/adapter/usecase"
	"autodm/internal/config"
	"autodm/internal/db"
)

// main is the entry point of the autodm service. It loads configuration,
// optionally runs database migrations and seeds demo data, initializes the
// database pool, the Graph API client and the webhook pipeline, then starts
// the HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	// Best-effort .env loading for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	repo := postgres.NewRepository(pool)
	messenger := graph.NewClient(cfg.Graph)
	webhooks := usecase.NewWebhookService(repo, messenger, logger)
	campaigns := usecase.NewCampaignService(repo)

	handler := httpadapter.NewHandler(webhooks, campaigns, logger, cfg.Graph.VerifyToken, cfg.Graph.AppSecret)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
