package sqlkit

import (
	"fmt"
)

// PostgresDialect struct.
type PostgresDialect struct{}

func (d PostgresDialect) Name() string { return "postgres" }

func (d PostgresDialect) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (d PostgresDialect) createVersionTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            	id serial NOT NULL,
                version_id bigint NOT NULL,
                name varchar(255) NOT NULL DEFAULT '',
                checksum varchar(64) NOT NULL DEFAULT '',
                tstamp timestamp NULL default now(),
                PRIMARY KEY(id)
            );`, tableName)
}

func (d PostgresDialect) insertVersionSQL(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (version_id, name, checksum) VALUES ($1, $2, $3);", tableName)
}

func (d PostgresDialect) selectVersionsSQL(tableName string) string {
	return fmt.Sprintf("SELECT version_id, name, checksum FROM %s ORDER BY version_id ASC", tableName)
}
