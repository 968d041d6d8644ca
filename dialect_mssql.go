package sqlkit

import (
	"fmt"
)

// SqlServerDialect struct.
type SqlServerDialect struct{}

func (m SqlServerDialect) Name() string { return "sqlserver" }

func (m SqlServerDialect) Placeholder(n int) string {
	return fmt.Sprintf("@p%d", n)
}

func (m SqlServerDialect) createVersionTableSQL(tableName string) string {
	return fmt.Sprintf(`IF OBJECT_ID('%s', 'U') IS NULL CREATE TABLE %s (
                id INT NOT NULL IDENTITY(1,1) PRIMARY KEY,
                version_id BIGINT NOT NULL,
                name VARCHAR(255) NOT NULL DEFAULT '',
                checksum VARCHAR(64) NOT NULL DEFAULT '',
                tstamp DATETIME NULL DEFAULT CURRENT_TIMESTAMP
            );`, tableName, tableName)
}

func (m SqlServerDialect) insertVersionSQL(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (version_id, name, checksum) VALUES (@p1, @p2, @p3)", tableName)
}

func (m SqlServerDialect) selectVersionsSQL(tableName string) string {
	return fmt.Sprintf("SELECT version_id, name, checksum FROM %s ORDER BY version_id ASC", tableName)
}
