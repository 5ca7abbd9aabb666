package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/database"
)

type querierKey struct{}

// WithQuerier returns a context that makes repositories use q instead of the
// pool. Used by WithTransaction and by tests injecting a mock pool.
func WithQuerier(ctx context.Context, q database.Querier) context.Context {
	return context.WithValue(ctx, querierKey{}, q)
}

// WithTransaction executes fn inside a database transaction. Repositories
// called with the context passed to fn run their statements on that
// transaction.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(WithQuerier(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the context-carried querier when present, otherwise the
// pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if q, ok := ctx.Value(querierKey{}).(database.Querier); ok {
		return q
	}
	return db.Pool
}
