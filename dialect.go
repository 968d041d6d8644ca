package sqlkit

import (
	"fmt"
)

// Dialect abstracts the per-driver details this library needs: the
// positional placeholder syntax for bound parameters, and the few SQL
// statements behind the migration version table.
type Dialect interface {
	// Name returns the canonical dialect name
	Name() string

	// Placeholder returns the placeholder token for the n-th bound
	// argument, counting from 1
	Placeholder(n int) string

	createVersionTableSQL(tableName string) string // sql string to create the version table
	insertVersionSQL(tableName string) string      // sql string to record an applied migration
	selectVersionsSQL(tableName string) string     // sql string to load the applied migration records
}

func LoadDialect(d string) (Dialect, error) {
	switch d {
	case "postgres":
		return &PostgresDialect{}, nil
	case "mysql", "mymysql":
		return &MySQLDialect{}, nil
	case "sqlite3", "sqlite":
		return &SqliteDialect{}, nil
	case "mssql", "sqlserver":
		return &SqlServerDialect{}, nil
	case "redshift":
		return &RedshiftDialect{}, nil
	case "tidb":
		return &TiDBDialect{}, nil
	}

	return nil, fmt.Errorf("%q: unknown dialect", d)
}
