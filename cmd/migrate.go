package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/audira/music-metrics/config"
	"github.com/audira/music-metrics/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending catalog migrations and exit",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 5*time.Minute, "give up after this long")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	db, err := sqlx.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return fmt.Errorf("couldn't open catalog database: %w", err)
	}
	defer db.Close()

	if err := store.MigrateWithContext(ctx, db.DB); err != nil {
		return err
	}
	slog.Default().InfoContext(ctx, "catalog schema is up to date")
	return nil
}
