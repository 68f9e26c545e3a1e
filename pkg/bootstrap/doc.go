// Package bootstrap makes sure a project's database and tables exist before
// the application starts.
//
// A run is a small state machine:
//
//	Unconnected -> AdminConnected -> DatabaseEnsured -> SchemaReady
//
// Any failing step moves the run to Failed and is returned as an *Error naming
// the step. Connection failures keep their *database.ConnectError in the
// chain, so callers can tell a bad password from a missing table.
//
// Runs are idempotent. The database is created only when the catalog says it
// is absent, and a concurrent creator winning the race is not an error. Tables
// are created with CREATE TABLE IF NOT EXISTS. Nothing is rolled back on
// failure; running again continues from wherever the last run stopped.
//
// # Usage Example
//
//	factory, err := database.NewFactory(database.MySQL, cfg)
//	if err != nil {
//		return err
//	}
//
//	b := bootstrap.New(factory, bootstrap.WithLogger(slog.Default()))
//	if err := b.Run(ctx, schema.ForDatabase("my_shop")); err != nil {
//		var be *bootstrap.Error
//		if errors.As(err, &be) {
//			log.Fatalf("bootstrap failed at %s: %v", be.Step, be.Err)
//		}
//	}
package bootstrap
