package database

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/schema"
	"github.com/pseudomuto/nodeseed/pkg/utils"
)

// erDBCreateExists is MySQL's ER_DB_CREATE_EXISTS.
const erDBCreateExists = 1007

// MySQL is the default dialect, matching the mysql2 driver used by generated
// projects.
var MySQL Dialect = mysqlDialect{}

type mysqlDialect struct{}

func (mysqlDialect) Name() string       { return "mysql" }
func (mysqlDialect) DriverName() string { return "mysql" }
func (mysqlDialect) DefaultPort() int   { return 3306 }

func (mysqlDialect) DSN(cfg ConnectionConfig) string {
	c := mysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = cfg.Addr()
	c.DBName = cfg.Database
	c.ParseTime = true

	return c.FormatDSN()
}

func (mysqlDialect) QuoteIdentifier(name string) string {
	return utils.QuoteIdentifier(name, utils.Backtick)
}

// DatabaseExistsQuery compares with the column's collation, which is
// case-insensitive on most servers. Callers must compare the returned names
// exactly.
func (mysqlDialect) DatabaseExistsQuery() string {
	return "SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?"
}

func (mysqlDialect) CreateDatabase(name string) string {
	return utils.NewSQLBuilder(utils.Backtick).Create("DATABASE").Name(name).String()
}

func (mysqlDialect) CreateTable(table schema.Table) string {
	return renderCreateTable(table, utils.Backtick, func(col schema.Column) string {
		var typ string
		switch col.Type.Kind {
		case schema.Integer:
			typ = "INT"
		case schema.String:
			typ = "TEXT"
			if col.Type.Size > 0 {
				typ = fmt.Sprintf("VARCHAR(%d)", col.Type.Size)
			}
		case schema.Date:
			typ = "DATE"
		case schema.Timestamp:
			typ = "TIMESTAMP"
		}

		if col.AutoIncrement {
			typ += " AUTO_INCREMENT"
		}

		return typ
	})
}

func (mysqlDialect) IsDatabaseExists(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == erDBCreateExists
}
