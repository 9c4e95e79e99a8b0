package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/venueprofit/internal/logger"
	"github.com/Simplici0/venueprofit/internal/migrations"
	"github.com/Simplici0/venueprofit/internal/seed"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if err := migrations.Up(a.db, logger.Named(a.log, "migrations")); err != nil {
					return fmt.Errorf("run database migrations: %w", err)
				}
				version, err := migrations.Version(a.db)
				if err != nil {
					return fmt.Errorf("read schema version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "database %s at version %d\n", a.cfg.DBPath, version)
				return nil
			})
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default cost profiles and operator account",
		Long:  `Migrates the database and inserts the default hall and room cost profiles. Existing profiles are left untouched. When ADMIN_EMAIL and ADMIN_PASSWORD are set the operator account is created as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if err := migrations.Up(a.db, logger.Named(a.log, "migrations")); err != nil {
					return fmt.Errorf("run database migrations: %w", err)
				}
				stats, err := seed.Run(cmd.Context(), a.db, seed.Config{
					AdminEmail:    a.cfg.AdminEmail,
					AdminPassword: a.cfg.AdminPassword,
				}, a.log)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rows\n", stats.Inserts)
				return nil
			})
		},
	}
}
