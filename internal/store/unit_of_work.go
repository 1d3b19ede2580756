package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
)

// maxTxAttempts bounds how many times a transaction failing with a
// [Retryable] error is run.
const maxTxAttempts = 3

type unitOfWork struct {
	db     *DB
	logger *logger.Logger
}

// NewUnitOfWork returns a [UnitOfWork] opening transactions on db.
func NewUnitOfWork(db *DB, log *logger.Logger) UnitOfWork {
	return &unitOfWork{db: db, logger: log}
}

// Do implements [UnitOfWork]. Transient PostgreSQL failures rerun fn on a
// fresh transaction.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = u.run(ctx, fn)
		if err == nil || !u.db.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
		log.Warn().Err(err).Str("func", "*unitOfWork.Do").Int("attempt", attempt).Msg("retrying transaction")
	}
	return err
}

// DoOnce implements [UnitOfWork]. A transient failure is returned as is.
func (u *unitOfWork) DoOnce(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return u.run(ctx, fn)
}

func (u *unitOfWork) run(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*unitOfWork.run").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(ctx, newRepositories(tx, u.logger)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*unitOfWork.run").Msg("failed to roll back transaction")
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*unitOfWork.run").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
