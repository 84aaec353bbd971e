// Package account implements account creation for the signup flow: password
// hashing, persistence and scheduling of the post-signup job.
package account

import (
	"context"
	"errors"
	"fmt"
	"signup/internal/config"
	"signup/pkg/domain"
	"signup/pkg/logger"
	"signup/pkg/metrics"
	"signup/pkg/serrors"
	"signup/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Options tune account creation.
type Options struct {
	// BcryptCost is the bcrypt work factor. Values outside bcrypt's range fall
	// back to bcrypt.DefaultCost.
	BcryptCost int
	// JobMaxAttempts bounds retries of the account created job.
	JobMaxAttempts int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		BcryptCost:     cfg.Account.BcryptCost,
		JobMaxAttempts: cfg.Worker.MaxAttempts,
	}
}

type accounts struct {
	options Options
	storage storage.Storage
}

var _ Accounts = (*accounts)(nil)

func New(storage storage.Storage, options Options) Accounts {
	if options.BcryptCost < bcrypt.MinCost || options.BcryptCost > bcrypt.MaxCost {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &accounts{
		options: options,
		storage: storage,
	}
}

// Add hashes the password, stores the account and enqueues CreatedJobArgs in
// one transaction. A taken username or email yields serrors.ErrConflict.
func (a *accounts) Add(ctx context.Context, input domain.AddAccountInput) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), a.options.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "password too long")
		}

		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	var created *domain.Account
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.StoreAccount(ctx, domain.Account{
			Username: input.Username,
			Email:    input.Email,
			Password: string(hash),
		})
		if err != nil {
			return fmt.Errorf("could not store account: %w", err)
		}

		if _, err := tx.AddJob(ctx, CreatedJobArgs{
			AccountID:   created.ID.String(),
			maxAttempts: a.options.JobMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrDuplicateAccount) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "account already exists")
		}

		return nil, fmt.Errorf("could not add account: %w", err)
	}

	metrics.AccountsCreated.Inc()
	logger.Info(ctx, "account created",
		zap.Stringer("accountID", created.ID),
		zap.String("username", created.Username))

	return created, nil
}

// MarkWelcomed records that the post-signup job ran for the account.
func (a *accounts) MarkWelcomed(ctx context.Context, ID domain.AccountID) (*domain.Account, error) {
	res, err := a.storage.MarkAccountWelcomed(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not mark account welcomed: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return res, nil
}

// PasswordMatches reports whether password hashes to account's stored hash.
func PasswordMatches(account *domain.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) == nil
}
