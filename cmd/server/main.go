package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/auth"
	"github.com/Simplici0/venueprofit/internal/bookings"
	"github.com/Simplici0/venueprofit/internal/config"
	"github.com/Simplici0/venueprofit/internal/costs"
	"github.com/Simplici0/venueprofit/internal/db"
	"github.com/Simplici0/venueprofit/internal/ledger"
	"github.com/Simplici0/venueprofit/internal/logger"
	"github.com/Simplici0/venueprofit/internal/migrations"
	"github.com/Simplici0/venueprofit/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error("close database", zap.Error(err))
		}
	}()

	if cfg.IsDev() {
		if err := migrations.Up(database, log.Named("migrations")); err != nil {
			return fmt.Errorf("run database migrations: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := seed.Run(ctx, database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}, log.Named("seed")); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	svc := bookings.NewService(
		costs.NewStore(database, log.Named("store.costs")),
		ledger.NewStore(database, log.Named("store.ledger")),
		cfg.Policy(),
		log.Named("svc.bookings"),
	)

	srv := &server{bookings: svc, log: log.Named("http")}
	if cfg.AuthEnabled() {
		srv.auth = auth.NewService(database, cfg.SessionSecret)
	} else {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, operator login disabled")
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", httpServer.Addr),
			zap.String("cost_mode", string(cfg.CostMode)),
			zap.Float64("profit_threshold", cfg.Threshold),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
