package sqlkit

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// statement is one executable statement plus its bound arguments. The
// Duration field is filled in by the profiling decorator after execution.
type statement struct {
	SQL      string
	Args     []any
	Duration time.Duration
}

type statementExecution func(ctx context.Context, e SQLExecutor, stmt *statement) error

func withStatementDebug(next statementExecution) statementExecution {
	return func(ctx context.Context, e SQLExecutor, stmt *statement) error {
		log.Debug(cleanSQL(stmt.SQL))
		return next(ctx, e, stmt)
	}
}

func withStatementEcho(next statementExecution) statementExecution {
	return func(ctx context.Context, e SQLExecutor, stmt *statement) error {
		echoStatementStart(stmt.SQL)
		err := next(ctx, e, stmt)
		echoStatementDone(err, stmt.Duration)
		return err
	}
}

func withStatementProfile(next statementExecution) statementExecution {
	return func(ctx context.Context, e SQLExecutor, stmt *statement) error {
		p := startProfile("stmt")
		err := next(ctx, e, stmt)
		p.Stop()
		log.Debugf("query done, duration: %s", p.String())
		stmt.Duration = p.duration
		return err
	}
}

// execStatement runs one statement through the decorator chain. The error
// from the driver is wrapped exactly once; no retry is attempted.
func (db *DB) execStatement(ctx context.Context, e SQLExecutor, query string, args ...any) error {
	stmt := &statement{SQL: query, Args: args}

	var fn statementExecution = func(ctx context.Context, e SQLExecutor, stmt *statement) error {
		if _, err := e.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
			return errors.Wrapf(err, "failed to execute SQL query %q", cleanSQL(stmt.SQL))
		}

		return nil
	}

	fn = withStatementProfile(fn)
	if db.echo {
		fn = withStatementEcho(fn)
	} else if log.GetLevel() == log.DebugLevel {
		fn = withStatementDebug(fn)
	}

	return fn(ctx, e, stmt)
}

// Insert executes a single INSERT with the given values bound as driver
// parameters in column order. Column and value counts are not validated;
// a mismatch surfaces as a driver error.
func (db *DB) Insert(ctx context.Context, table string, columns, values []string) error {
	query := BuildInsertQuery(db.dialect, table, columns)
	return db.execStatement(ctx, db.DB, query, stringArgs(values)...)
}

// Update executes a single UPDATE scoped by the key predicate. The update
// values and the key value are bound as driver parameters.
func (db *DB) Update(ctx context.Context, table string, updates []Assignment, key Assignment) error {
	columns := make([]string, len(updates))
	args := make([]any, 0, len(updates)+1)
	for i, update := range updates {
		columns[i] = update.Column
		args = append(args, update.Value)
	}
	args = append(args, key.Value)

	query := BuildUpdateQuery(db.dialect, table, columns, key.Column)
	return db.execStatement(ctx, db.DB, query, args...)
}

// Select executes a SELECT scoped by the key predicate and returns the
// matching rows. Each row carries one Value per requested field, in field
// order; the caller converts explicitly via the Value accessors.
func (db *DB) Select(ctx context.Context, table string, fields []string, key Assignment) ([]Row, error) {
	query := BuildSelectQuery(db.dialect, table, fields, key.Column)

	if db.echo {
		echoQuery(query)
	}

	rows, err := db.QueryContext(ctx, query, key.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute SQL query %q", query)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			log.WithError(err).Error("row close error")
		}
	}()

	var out []Row
	for rows.Next() {
		raw := make([]any, len(fields))
		ptrs := make([]any, len(fields))
		for i := range raw {
			ptrs[i] = &raw[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}

		row := make(Row, len(fields))
		for i, src := range raw {
			v, err := newValue(src)
			if err != nil {
				return nil, errors.Wrapf(err, "field %s", fields[i])
			}
			row[i] = v
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return out, errors.Wrap(err, "failed to read the next row")
	}

	return out, nil
}

// SelectStrings is the flat-string variant of Select: every requested field
// is converted to text. A field whose column type does not convert is
// reported as an error naming the field rather than a runtime panic.
func (db *DB) SelectStrings(ctx context.Context, table string, fields []string, key Assignment) ([][]string, error) {
	rows, err := db.Select(ctx, table, fields, key)
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		texts := make([]string, len(row))
		for i, v := range row {
			s, err := v.Text()
			if err != nil {
				return nil, errors.Wrapf(err, "field %s is not text", fields[i])
			}
			texts[i] = s
		}
		out = append(out, texts)
	}

	return out, nil
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
