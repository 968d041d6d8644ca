package sqlkit

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// VersionTableName is the migration version table name
const VersionTableName = "sqlkit_migrations"

// DB wraps a *sql.DB connection pool together with the driver name and the
// resolved dialect. It owns no state beyond the pool itself; concurrent
// calls are coordinated entirely by database/sql connection checkout.
type DB struct {
	*sql.DB

	driverName string
	dialect    Dialect

	echo bool
}

func OpenWithConfig(config *Config) (*DB, error) {
	dialectName := config.Dialect
	if len(dialectName) == 0 {
		dialectName = config.Driver
	}

	dialect, err := LoadDialect(dialectName)
	if err != nil {
		return nil, err
	}

	dsn := config.DSN
	if len(dsn) == 0 {
		dsn, err = BuildDSNFromEnvVars(config.Driver)
		if err != nil {
			return nil, errors.Wrap(err, "dsn is not defined, can not build dsn")
		}
	}

	db, err := open(config.Driver, dialect, dsn)
	if err != nil {
		return nil, err
	}

	db.echo = config.Echo
	return db, nil
}

func OpenWithEnv(prefix string) (*DB, error) {
	driverName := os.Getenv(prefix + "_DRIVER")
	if driverName == "" {
		return nil, fmt.Errorf("env %s_DRIVER is not defined", prefix)
	}

	dialectName := os.Getenv(prefix + "_DIALECT")
	if dialectName == "" {
		dialectName = driverName
	}

	dialect, err := LoadDialect(dialectName)
	if err != nil {
		return nil, err
	}

	dsn := os.Getenv(prefix + "_DSN")
	return open(driverName, dialect, dsn)
}

// Open creates a connection pool for the given driver and resolves the
// matching dialect from the driver name.
func Open(driverName, dsn string) (*DB, error) {
	dialect, err := LoadDialect(driverName)
	if err != nil {
		return nil, err
	}

	return open(driverName, dialect, dsn)
}

func open(driverName string, dialect Dialect, dsn string) (*DB, error) {
	registeredName := castDriverName(driverName)

	switch registeredName {
	// supported drivers
	case "postgres", "sqlite3", "sqlite", "mysql", "mymysql", "sqlserver":
	default:
		return nil, fmt.Errorf("unsupported driver %s", driverName)
	}

	db, err := sql.Open(registeredName, dsn)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:         db,
		driverName: registeredName,
		dialect:    dialect,
	}, nil
}

// New wraps a caller-owned pool. The pool stays owned by the caller;
// closing the returned DB closes it.
func New(driverName string, db *sql.DB) (*DB, error) {
	dialect, err := LoadDialect(driverName)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:         db,
		driverName: castDriverName(driverName),
		dialect:    dialect,
	}, nil
}

// Dialect returns the resolved dialect of this connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// DriverName returns the registered database/sql driver name.
func (db *DB) DriverName() string {
	return db.driverName
}

// SetEcho toggles console echo of every executed statement.
func (db *DB) SetEcho(echo bool) {
	db.echo = echo
}

func castDriverName(driver string) string {
	switch driver {
	case "mssql":
		return "sqlserver"
	case "redshift":
		return "postgres"
	case "tidb":
		return "mysql"
	}

	return driver
}

// BuildDSNFromEnvVars builds the data source name from the conventional
// environment variables of the given driver.
func BuildDSNFromEnvVars(driver string) (string, error) {
	switch driver {
	case "mysql", "tidb", "mymysql":
		return buildMySqlDSN()
	}

	return "", fmt.Errorf("can not build dsn for driver %s", driver)
}
