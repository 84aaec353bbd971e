package account

import (
	"github.com/riverqueue/river"
)

// CreatedJobArgs is enqueued in the same transaction that stores a new
// account, so the job exists if and only if the account does.
type CreatedJobArgs struct {
	AccountID string `json:"accountId" river:"unique"`

	maxAttempts int
}

func (CreatedJobArgs) Kind() string { return "AccountCreatedJob" }

// InsertOpts limits retries and keeps a single job per account.
func (args CreatedJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
