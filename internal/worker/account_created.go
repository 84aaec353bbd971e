package worker

import (
	"context"
	"errors"
	"fmt"
	"signup/internal/account"
	"signup/pkg/domain"
	"signup/pkg/logger"
	"signup/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AccountCreatedWorker finishes onboarding of a freshly created account.
// Jobs for accounts that no longer exist are cancelled; other failures are
// retried by river.
type AccountCreatedWorker struct {
	river.WorkerDefaults[account.CreatedJobArgs]

	accounts account.Accounts
}

func NewAccountCreatedWorker(accounts account.Accounts) *AccountCreatedWorker {
	return &AccountCreatedWorker{accounts: accounts}
}

func (w *AccountCreatedWorker) Work(ctx context.Context, job *river.Job[account.CreatedJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("accountID", job.Args.AccountID))

	id, err := uuid.Parse(job.Args.AccountID)
	if err != nil {
		logger.Error(ctx, "invalid account id in job", zap.Error(err))

		return river.JobCancel(fmt.Errorf("invalid account id: %w", err)) //nolint: wrapcheck
	}

	acc, err := w.accounts.MarkWelcomed(ctx, domain.AccountID(id))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "account vanished before welcome")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not welcome account", zap.Error(err))

		return fmt.Errorf("could not welcome account: %w", err)
	}

	logger.Info(ctx, "account welcomed", zap.Time("welcomedAt", acc.WelcomedAt))

	return nil
}
