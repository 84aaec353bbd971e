package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback outside of a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateAccount is returned when the username or email is already taken.
	ErrDuplicateAccount = errors.New("duplicate account")
)
