package sqlkit

import (
	"fmt"
)

// SqliteDialect covers both the cgo sqlite3 driver and the pure-Go sqlite
// driver; they share the same placeholder syntax and DDL.
type SqliteDialect struct{}

func (m SqliteDialect) Name() string { return "sqlite3" }

func (m SqliteDialect) Placeholder(n int) string { return "?" }

func (m SqliteDialect) createVersionTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                version_id INTEGER NOT NULL UNIQUE,
                name TEXT NOT NULL DEFAULT '',
                checksum TEXT NOT NULL DEFAULT '',
                tstamp TIMESTAMP DEFAULT (datetime('now'))
            );`, tableName)
}

func (m SqliteDialect) insertVersionSQL(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (version_id, name, checksum) VALUES (?, ?, ?)", tableName)
}

func (m SqliteDialect) selectVersionsSQL(tableName string) string {
	return fmt.Sprintf("SELECT version_id, name, checksum FROM %s ORDER BY version_id ASC", tableName)
}
