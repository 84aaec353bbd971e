// Package worker runs the river queue client that processes background jobs
// of the signup service.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"signup/internal/account"
	"signup/internal/config"
	"signup/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 20

type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
}

func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Start registers the workers and starts a river client on dbPool. The
// caller stops it with Client.Stop.
func Start(ctx context.Context, dbPool *pgxpool.Pool, accounts account.Accounts, opts Options) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = defaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewAccountCreatedWorker(accounts))

	client, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := client.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return client, nil
}
