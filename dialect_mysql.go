package sqlkit

import (
	"fmt"
)

// MySQLDialect struct.
type MySQLDialect struct{}

func (m MySQLDialect) Name() string { return "mysql" }

func (m MySQLDialect) Placeholder(n int) string { return "?" }

func (m MySQLDialect) createVersionTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
                id SERIAL NOT NULL,
                version_id BIGINT NOT NULL,
                name VARCHAR(255) NOT NULL DEFAULT '',
                checksum VARCHAR(64) NOT NULL DEFAULT '',
                tstamp TIMESTAMP NOT NULL DEFAULT NOW(),
                PRIMARY KEY(id),
				UNIQUE unique_version(version_id)
            );`, tableName)
}

func (m MySQLDialect) insertVersionSQL(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (version_id, name, checksum) VALUES (?, ?, ?)", tableName)
}

func (m MySQLDialect) selectVersionsSQL(tableName string) string {
	return fmt.Sprintf("SELECT version_id, name, checksum FROM %s ORDER BY version_id ASC", tableName)
}
