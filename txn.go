package sqlkit

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Transaction begins a transaction, runs fn against it, and commits. If fn
// returns an error the transaction is rolled back explicitly and the
// original error is returned.
func (db *DB) Transaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	if err := fn(tx); err != nil {
		return rollbackAndLogErr(err, tx)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// InsertBatch inserts the given value rows into one table within a single
// transaction. The statement is prepared once and executed once per row,
// strictly sequentially; the commit happens only after every row succeeds.
// On the first failure the transaction is rolled back, so no prior row of
// the batch remains visible.
func (db *DB) InsertBatch(ctx context.Context, table string, columns []string, rows [][]string) error {
	query := BuildInsertQuery(db.dialect, table, columns)

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return errors.Wrapf(err, "failed to prepare SQL query %q", query)
		}

		defer func() {
			if err := stmt.Close(); err != nil {
				log.WithError(err).Error("statement close error")
			}
		}()

		if db.echo {
			echoQuery(query)
		}

		for i, row := range rows {
			if _, err := stmt.ExecContext(ctx, stringArgs(row)...); err != nil {
				return errors.Wrapf(err, "failed to execute batch insert row %d", i+1)
			}
		}

		return nil
	})
}

func rollbackAndLogErr(originErr error, tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil {
		log.WithError(err).Errorf("unable to rollback transaction")
	}

	return originErr
}
