package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

var errNoJobClient = errors.New("pgsql handle has no job client")

// newJobClient returns an insert-only river client. It has no queues, so it
// never works jobs; internal/worker runs the working client.
func newJobClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a river job. On a transactional handle the job commits or
// rolls back with the transaction. It reports false when a unique job with the
// same arguments already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, errNoJobClient
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
