package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kfalter/chirper-api/internal/platform/logger"
)

// TxFn runs inside a database transaction. Returning nil commits the
// transaction; returning an error rolls it back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction begins a transaction on db, runs fn, and commits or rolls
// back based on fn's result. A panic inside fn also rolls back before the
// panic is re-raised, so a crashing registration can't leave a half-written
// account behind.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("could not begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback after panic failed",
				slog.String("error", rbErr.Error()),
				slog.Any("panic", p))
		} else {
			log.Error("transaction rolled back after panic", slog.Any("panic", p))
		}
		panic(p)
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rbErr, err,
			)
		}
		log.Debug("transaction rolled back", slog.String("error", err.Error()))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("could not commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
