package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"signup/internal/account"
	"signup/internal/api"
	"signup/internal/api/handler/v1handler"
	"signup/internal/config"
	"signup/internal/signup"
	"signup/internal/worker"
	"signup/pkg/emailvalidator"
	"signup/pkg/logger"
	"signup/pkg/storage/postgres"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, accounts account.Accounts) func(ctx context.Context) {
	controller := signup.New(emailvalidator.New(), accounts)

	server, err := api.NewServer(api.Deps{
		Deps:   v1handler.Deps{Signup: controller},
		Pinger: pgsql,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, accounts account.Accounts) func(ctx context.Context) {
	client, err := worker.Start(ctx, pgsql.Pool, accounts, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started")

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := pgsql.Ping(ctx); err != nil {
				logger.Fatal(ctx, "could not reach postgres", zap.Error(err))
			}

			accounts := account.New(pgsql, account.NewOptions(cfg))

			// the worker context outlives the signal so in-flight jobs can
			// finish during shutdown.
			stopWorker := setupWorker(context.WithoutCancel(ctx), cfg, pgsql, accounts)
			stopWebserver := setupServer(ctx, cfg, pgsql, accounts)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
