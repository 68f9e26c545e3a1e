package database

import (
	"context"
	"database/sql"
	"sync"

	"github.com/pkg/errors"
)

type (
	// Conn is a single open database connection used by a bootstrap run.
	Conn interface {
		// Exec runs a statement that returns no rows
		Exec(ctx context.Context, query string, args ...any) error

		// QueryColumn runs a query and returns the first column of every row as a string
		QueryColumn(ctx context.Context, query string, args ...any) ([]string, error)

		// Close releases the connection. It is idempotent.
		Close() error
	}

	// Factory opens the two kinds of connections a bootstrap needs. Each call
	// makes exactly one attempt; there is no retry.
	Factory interface {
		Dialect() Dialect
		OpenAdmin(ctx context.Context) (Conn, error)
		OpenScoped(ctx context.Context, database string) (Conn, error)
	}

	// SQLFactory opens connections through database/sql using the dialect's
	// registered driver.
	SQLFactory struct {
		dialect Dialect
		config  ConnectionConfig
	}

	sqlConn struct {
		db   *sql.DB
		once sync.Once
		err  error
	}
)

// NewFactory validates cfg and returns a factory for the given dialect. The
// config's Database field is ignored; the database is chosen per call to
// OpenScoped.
//
// Example:
//
//	factory, err := database.NewFactory(database.MySQL, database.ConnectionConfig{
//		Host: "localhost",
//		Port: 3306,
//		User: "root",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	conn, err := factory.OpenAdmin(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer conn.Close()
func NewFactory(dialect Dialect, cfg ConnectionConfig) (*SQLFactory, error) {
	if dialect == nil {
		return nil, errors.New("dialect is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid connection config")
	}

	return &SQLFactory{dialect: dialect, config: cfg}, nil
}

// Dialect returns the dialect used to render statements for this factory.
func (f *SQLFactory) Dialect() Dialect {
	return f.dialect
}

// OpenAdmin opens a connection with no database selected.
func (f *SQLFactory) OpenAdmin(ctx context.Context) (Conn, error) {
	return f.open(ctx, AdminConnection, f.config.Admin())
}

// OpenScoped opens a connection bound to the named database.
func (f *SQLFactory) OpenScoped(ctx context.Context, database string) (Conn, error) {
	if database == "" {
		return nil, &ConnectError{
			Kind: ScopedConnection,
			Addr: f.config.Addr(),
			Err:  errors.New("database name is required"),
		}
	}

	return f.open(ctx, ScopedConnection, f.config.Scoped(database))
}

func (f *SQLFactory) open(ctx context.Context, kind ConnectKind, cfg ConnectionConfig) (Conn, error) {
	connErr := func(err error) error {
		return &ConnectError{Kind: kind, Addr: cfg.Addr(), Database: cfg.Database, Err: err}
	}

	db, err := sql.Open(f.dialect.DriverName(), f.dialect.DSN(cfg))
	if err != nil {
		return nil, connErr(err)
	}

	// One physical connection per handle keeps admin and scoped sessions apart.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, connErr(err)
	}

	return &sqlConn{db: db}, nil
}

func (c *sqlConn) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.db.ExecContext(ctx, query, args...)
	return err
}

func (c *sqlConn) QueryColumn(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

func (c *sqlConn) Close() error {
	c.once.Do(func() {
		c.err = c.db.Close()
	})

	return c.err
}

// Close closes conn if it was opened. It is safe to call with a nil Conn,
// which is what a failed Open returns.
func Close(conn Conn) error {
	if conn == nil {
		return nil
	}

	return conn.Close()
}
