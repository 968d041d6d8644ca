package main

import (
	"github.com/pkg/errors"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/ziutek/mymysql/godrv"
	_ "modernc.org/sqlite"
)

var errNoConfig = errors.New("config is not loaded, use --config to specify the config file")
