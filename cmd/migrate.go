package main

import (
	"context"
	"database/sql"
	"fmt"
	root "signup"
	"signup/internal/config"
	"signup/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations and then river's own
// schema, both to their latest version.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", v.Version))
	}

	return nil
}

// rollbackSchema reverts the latest goose migration. River's schema is left
// untouched.
func rollbackSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.DownContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not roll back pgsql: %w", err)
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres client is not a *sql.DB")
			}

			migrate := migrateSchema
			if down {
				migrate = rollbackSchema
			}
			if err := migrate(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Bool("down", down))
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Roll back the latest application migration")

	return cmd
}
