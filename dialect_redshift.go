package sqlkit

import (
	"fmt"
)

// RedshiftDialect is postgres-compatible except for the identity column
// syntax in DDL.
type RedshiftDialect struct {
	PostgresDialect
}

func (d RedshiftDialect) Name() string { return "redshift" }

func (d RedshiftDialect) createVersionTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            	id integer NOT NULL identity(1, 1),
                version_id bigint NOT NULL,
                name varchar(255) NOT NULL DEFAULT '',
                checksum varchar(64) NOT NULL DEFAULT '',
                tstamp timestamp NULL default sysdate,
                PRIMARY KEY(id)
            );`, tableName)
}
