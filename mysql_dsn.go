package sqlkit

import (
	"os"

	"github.com/go-sql-driver/mysql"
)

// buildMySqlDSN builds the data source name from environment variables
func buildMySqlDSN() (string, error) {
	if v, ok := os.LookupEnv("MYSQL_URL"); ok {
		return v, nil
	}

	if v, ok := os.LookupEnv("MYSQL_DSN"); ok {
		return v, nil
	}

	c := mysql.NewConfig()
	c.User = "root"
	c.Net = "tcp"

	if v, ok := os.LookupEnv("MYSQL_USER"); ok {
		c.User = v
	}

	if v, ok := os.LookupEnv("MYSQL_PASSWORD"); ok {
		c.Passwd = v
	} else if v, ok := os.LookupEnv("MYSQL_PASS"); ok {
		c.Passwd = v
	} else if c.User == "root" {
		if v, ok := os.LookupEnv("MYSQL_ROOT_PASSWORD"); ok {
			c.Passwd = v
		}
	}

	address := ""
	if v, ok := os.LookupEnv("MYSQL_HOST"); ok {
		address = v
	}

	if v, ok := os.LookupEnv("MYSQL_PORT"); ok {
		address += ":" + v
	}

	c.Addr = address

	if v, ok := os.LookupEnv("MYSQL_PROTOCOL"); ok {
		c.Net = v
	}

	if v, ok := os.LookupEnv("MYSQL_DATABASE"); ok {
		c.DBName = v
	}

	return c.FormatDSN(), nil
}
