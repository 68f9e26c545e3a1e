package database

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/schema"
	"github.com/pseudomuto/nodeseed/pkg/utils"
)

// Dialect renders everything engine-specific about a bootstrap: connection
// strings, identifier quoting, the catalog lookup and DDL.
type Dialect interface {
	// Name is the name used to select the dialect on the command line
	Name() string

	// DriverName is the database/sql driver registered for the dialect
	DriverName() string

	// DefaultPort is the port the engine listens on by default
	DefaultPort() int

	// DSN returns the driver connection string for cfg. An empty cfg.Database
	// yields an admin connection.
	DSN(cfg ConnectionConfig) string

	// QuoteIdentifier quotes a database, table or column name
	QuoteIdentifier(name string) string

	// DatabaseExistsQuery returns a query taking the database name as its only
	// argument and yielding one row per matching schema name.
	DatabaseExistsQuery() string

	// CreateDatabase returns the statement creating the named database
	CreateDatabase(name string) string

	// CreateTable returns a create-if-absent statement for the table
	CreateTable(table schema.Table) string

	// IsDatabaseExists reports whether err is the engine's "database already
	// exists" error.
	IsDatabaseExists(err error) bool
}

var dialects = map[string]Dialect{
	MySQL.Name():    MySQL,
	Postgres.Name(): Postgres,
}

// LookupDialect returns the dialect registered under name (case-insensitive).
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unsupported database driver: %q (expected mysql or postgres)", name)
	}

	return d, nil
}

// renderCreateTable builds a CREATE TABLE IF NOT EXISTS statement with one
// column per line. A single-column primary key is declared inline, composite
// keys as a table constraint.
func renderCreateTable(table schema.Table, quote rune, columnType func(schema.Column) string) string {
	inlinePK := len(table.PrimaryKey) == 1

	lines := make([]string, 0, len(table.Columns)+1)
	for _, col := range table.Columns {
		def := utils.NewSQLBuilder(quote).Name(col.Name).Raw(columnType(col))

		switch {
		case inlinePK && table.IsPrimaryKey(col.Name):
			def.Raw("PRIMARY KEY")
		case col.Nullable:
			def.Raw("NULL")
		default:
			def.Raw("NOT NULL")
		}

		if col.Default == schema.CurrentTimestamp {
			def.Default("CURRENT_TIMESTAMP")
		}

		lines = append(lines, "    "+def.String())
	}

	if len(table.PrimaryKey) > 1 {
		pk := utils.NewSQLBuilder(quote).Raw("PRIMARY KEY").NameList(table.PrimaryKey...)
		lines = append(lines, "    "+pk.String())
	}

	return utils.NewSQLBuilder(quote).
		Create("TABLE").
		IfNotExists().
		Name(table.Name).
		Raw("(\n" + strings.Join(lines, ",\n") + "\n)").
		String()
}
