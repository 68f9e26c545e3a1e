package database

import (
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/schema"
	"github.com/pseudomuto/nodeseed/pkg/utils"
)

const (
	// duplicateDatabase is the SQLSTATE for CREATE DATABASE on an existing name.
	duplicateDatabase = "42P04"

	// maintenanceDatabase is used for admin connections; Postgres always
	// requires a database to connect to.
	maintenanceDatabase = "postgres"
)

// Postgres renders bootstrap statements for PostgreSQL via pgx.
var Postgres Dialect = postgresDialect{}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "pgx" }
func (postgresDialect) DefaultPort() int   { return 5432 }

func (postgresDialect) DSN(cfg ConnectionConfig) string {
	database := cfg.Database
	if database == "" {
		database = maintenanceDatabase
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Addr(),
		Path:   "/" + database,
	}

	return u.String()
}

func (postgresDialect) QuoteIdentifier(name string) string {
	return utils.QuoteIdentifier(name, utils.DoubleQuote)
}

func (postgresDialect) DatabaseExistsQuery() string {
	return "SELECT datname FROM pg_database WHERE datname = $1"
}

func (postgresDialect) CreateDatabase(name string) string {
	return utils.NewSQLBuilder(utils.DoubleQuote).Create("DATABASE").Name(name).String()
}

func (postgresDialect) CreateTable(table schema.Table) string {
	return renderCreateTable(table, utils.DoubleQuote, func(col schema.Column) string {
		var typ string
		switch col.Type.Kind {
		case schema.Integer:
			typ = "INTEGER"
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
			typ += " GENERATED BY DEFAULT AS IDENTITY"
		}

		return typ
	})
}

func (postgresDialect) IsDatabaseExists(err error) bool {
	var pe *pgconn.PgError
	return errors.As(err, &pe) && pe.Code == duplicateDatabase
}
