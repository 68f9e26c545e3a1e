package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/schema"
)

type (
	// Bootstrapper ensures a database and its tables exist. It is safe to run
	// repeatedly against the same server.
	Bootstrapper struct {
		factory database.Factory
		logger  *slog.Logger
	}

	// Option configures a Bootstrapper.
	Option func(*Bootstrapper)

	// run holds the state of a single Run call.
	run struct {
		*Bootstrapper
		def    schema.Definition
		state  State
		admin  database.Conn
		scoped database.Conn
	}

	transition func(context.Context) (State, error)
)

// WithLogger sets the logger used for progress records. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bootstrapper) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a Bootstrapper that opens its connections through factory.
func New(factory database.Factory, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		factory: factory,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run drives the bootstrap state machine for def:
//
//	Unconnected -> AdminConnected   open an admin connection
//	AdminConnected -> DatabaseEnsured   create the database if absent, close admin
//	DatabaseEnsured -> SchemaReady   open a scoped connection, create tables, close it
//
// The first failing step stops the run and is returned as an *Error. Nothing is
// rolled back; a later Run picks up where the failed one left off. Every
// connection opened by Run is closed before it returns.
func (b *Bootstrapper) Run(ctx context.Context, def schema.Definition) error {
	if def.Database == "" {
		return errors.New("schema definition has no database name")
	}

	r := &run{Bootstrapper: b, def: def, state: Unconnected}
	defer r.release()

	transitions := map[State]transition{
		Unconnected:     r.connectAdmin,
		AdminConnected:  r.ensureDatabase,
		DatabaseEnsured: r.ensureTables,
	}

	for r.state != SchemaReady {
		next, err := transitions[r.state](ctx)
		if err != nil {
			r.logger.Error("bootstrap failed", "database", def.Database, "state", r.state.String(), "error", err)
			r.state = Failed
			return err
		}

		r.logger.Debug("bootstrap transition", "database", def.Database, "from", r.state.String(), "to", next.String())
		r.state = next
	}

	r.logger.Info("schema ready", "database", def.Database, "tables", len(def.Tables))
	return nil
}

func (r *run) connectAdmin(ctx context.Context) (State, error) {
	conn, err := r.factory.OpenAdmin(ctx)
	if err != nil {
		return Failed, r.fail(StepConnectAdmin, "", err)
	}

	r.admin = conn
	return AdminConnected, nil
}

func (r *run) ensureDatabase(ctx context.Context) (State, error) {
	exists, err := r.databaseExists(ctx)
	if err != nil {
		return Failed, r.fail(StepCheckDatabase, "", err)
	}

	if exists {
		r.logger.Info("database exists", "database", r.def.Database)
	} else if err := r.createDatabase(ctx); err != nil {
		return Failed, err
	}

	if err := r.admin.Close(); err != nil {
		return Failed, r.fail(StepCloseAdmin, "", err)
	}

	return DatabaseEnsured, nil
}

// createDatabase issues CREATE DATABASE. A concurrent bootstrap may create the
// database between the catalog check and this statement, so an "already
// exists" error, or any error followed by the database being present, is
// treated as success.
func (r *run) createDatabase(ctx context.Context) error {
	dialect := r.factory.Dialect()

	err := r.admin.Exec(ctx, dialect.CreateDatabase(r.def.Database))
	if err == nil {
		r.logger.Info("database created", "database", r.def.Database)
		return nil
	}

	if dialect.IsDatabaseExists(err) {
		r.logger.Info("database created concurrently", "database", r.def.Database)
		return nil
	}

	exists, checkErr := r.databaseExists(ctx)
	if checkErr == nil && exists {
		r.logger.Info("database created concurrently", "database", r.def.Database, "create_error", err)
		return nil
	}

	return r.fail(StepCreateDatabase, "", err)
}

func (r *run) databaseExists(ctx context.Context) (bool, error) {
	names, err := r.admin.QueryColumn(ctx, r.factory.Dialect().DatabaseExistsQuery(), r.def.Database)
	if err != nil {
		return false, err
	}

	for _, name := range names {
		if name == r.def.Database {
			return true, nil
		}
	}

	return false, nil
}

func (r *run) ensureTables(ctx context.Context) (State, error) {
	conn, err := r.factory.OpenScoped(ctx, r.def.Database)
	if err != nil {
		return Failed, r.fail(StepConnectScoped, "", err)
	}
	r.scoped = conn

	dialect := r.factory.Dialect()
	for _, table := range r.def.Tables {
		if err := conn.Exec(ctx, dialect.CreateTable(table)); err != nil {
			return Failed, r.fail(StepCreateTable, table.Name, err)
		}

		r.logger.Info("table ensured", "database", r.def.Database, "table", table.Name)
	}

	if err := conn.Close(); err != nil {
		return Failed, r.fail(StepCloseScoped, "", err)
	}

	return SchemaReady, nil
}

// release closes any connection still open. Close is idempotent, so
// connections already closed by a transition are unaffected.
func (r *run) release() {
	for _, conn := range []database.Conn{r.admin, r.scoped} {
		if err := database.Close(conn); err != nil {
			r.logger.Debug("failed to release connection", "database", r.def.Database, "error", err)
		}
	}
}

func (r *run) fail(step Step, table string, err error) error {
	return &Error{Step: step, Database: r.def.Database, Table: table, Err: err}
}
