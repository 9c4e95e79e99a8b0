package commands

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/bookings"
	"github.com/Simplici0/venueprofit/internal/config"
	"github.com/Simplici0/venueprofit/internal/costs"
	"github.com/Simplici0/venueprofit/internal/db"
	"github.com/Simplici0/venueprofit/internal/ledger"
	"github.com/Simplici0/venueprofit/internal/logger"
	"github.com/Simplici0/venueprofit/internal/profitability"
)

// NewRootCmd assembles the venuectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "venuectl",
		Short:         "Venue rental profitability tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("db", "", "SQLite database path (defaults to DB_PATH)")

	root.AddCommand(
		MigrateCmd(),
		SeedCmd(),
		CostsCmd(),
		QuoteCmd(),
		BookingsCmd(),
	)
	return root
}

// app holds what a single command invocation needs.
type app struct {
	cfg config.Config
	db  *sql.DB
	log *zap.Logger
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flag("db"); f != nil && f.Value.String() != "" {
		cfg.DBPath = f.Value.String()
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &app{cfg: cfg, db: database, log: log}, nil
}

func (a *app) Close() error {
	_ = a.log.Sync()
	return a.db.Close()
}

func (a *app) service(policy profitability.Policy) *bookings.Service {
	return bookings.NewService(
		costs.NewStore(a.db, logger.Named(a.log, "store.costs")),
		ledger.NewStore(a.db, logger.Named(a.log, "store.ledger")),
		policy,
		logger.Named(a.log, "svc.bookings"),
	)
}

// withApp opens the application around fn and reports the first error.
func withApp(cmd *cobra.Command, fn func(*app) error) (err error) {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return fn(a)
}
