package sqlkit

import (
	"fmt"
)

// TiDBDialect is mysql-compatible except for the DDL of the version table.
type TiDBDialect struct {
	MySQLDialect
}

func (m TiDBDialect) Name() string { return "tidb" }

func (m TiDBDialect) createVersionTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
                id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT UNIQUE,
                version_id bigint NOT NULL,
                name VARCHAR(255) NOT NULL DEFAULT '',
                checksum VARCHAR(64) NOT NULL DEFAULT '',
                tstamp timestamp NULL default now(),
                PRIMARY KEY(id)
            );`, tableName)
}
