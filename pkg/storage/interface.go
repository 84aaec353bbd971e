// Package storage declares the persistence contracts of the signup service.
// Backends such as pkg/storage/postgres implement them; use cases only see
// these interfaces.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"signup/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage groups every domain capability of a storage handle.
type AllStorage interface {
	AccountStorage
	JobStorage
}

// AccountStorage persists accounts.
type AccountStorage interface {
	// StoreAccount inserts account and returns the stored row including
	// generated fields. ErrDuplicateAccount is returned when the username or
	// email already exists.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByID returns the account with the given ID, or nil when missing.
	AccountByID(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
	// MarkAccountWelcomed sets welcomed_at if it is not set yet and returns the
	// account, or nil when missing.
	MarkAccountWelcomed(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
}

// JobStorage enqueues background jobs. Inside a transaction the job only
// becomes visible on commit. The returned bool is false when the job was
// skipped as a duplicate.
type JobStorage interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// TxStorage is a storage handle bound to a transaction.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root, non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connections.
	Close() error
	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
