package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code raised by a unique index.
const uniqueViolation = "23505"

// BaseRepository provides the transaction helpers and error mapping shared by the ledger repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// WrapError maps a driver error onto the apperrors sentinels the services test for.
// A missing row is apperrors.ErrNotFound, a unique violation apperrors.ErrDuplicate,
// and anything else a 500 AppError carrying message.
func (r *BaseRepository) WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ErrDuplicate
	}
	return apperrors.NewAppError(http.StatusInternalServerError, message, err)
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, r.WrapError(err, "failed to begin transaction")
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return r.WrapError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction that was not committed. It is meant to be deferred.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return r.WrapError(err, "failed to rollback transaction")
	}
	return nil
}

// InTx runs fn inside a transaction, committing when fn succeeds and rolling back otherwise.
func (r *BaseRepository) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
