// Package main provides the CLI entrypoint for the signup service.
// It wires subcommands (serve, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"signup/internal/config"
	"signup/pkg/logger"
	"signup/pkg/storage/postgres"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client and a cleanup function closing it.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "signup",
		Short: "Account signup service",
	}

	// cobra only parses flags on Execute, but the config is needed to build
	// the subcommands. The flag is declared on both parsers so cobra accepts it.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the config flag out of args so the standard flag parser
// does not stop at the subcommand name.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
		if !strings.HasPrefix(args[i], "-") || (name != "c" && name != "config") {
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				break
			}
			i++
			value = args[i]
		}
		out = append(out, "-c", value)
	}

	return out
}
