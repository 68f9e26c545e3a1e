// Package database opens the connections used to bootstrap a generated
// project's schema.
//
// A bootstrap talks to the server twice: first through an admin connection
// with no database selected (catalog lookups and CREATE DATABASE), then through
// a scoped connection bound to the project's database (table DDL). Factory
// models exactly those two operations so the bootstrap state machine can be
// exercised against fakes.
//
// # Dialects
//
// Two dialects are provided:
//   - MySQL (default): github.com/go-sql-driver/mysql, backtick identifiers,
//     INFORMATION_SCHEMA.SCHEMATA lookups, AUTO_INCREMENT keys.
//   - Postgres: github.com/jackc/pgx/v5/stdlib, double-quoted identifiers,
//     pg_database lookups, identity keys. Admin connections use the
//     "postgres" maintenance database.
//
// # Usage Example
//
//	cfg := database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root"}
//	factory, err := database.NewFactory(database.MySQL, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	conn, err := factory.OpenScoped(ctx, "my_shop")
//	if err != nil {
//		var ce *database.ConnectError
//		if errors.As(err, &ce) {
//			log.Fatalf("cannot reach %s: %v", ce.Addr, ce.Err)
//		}
//	}
//	defer conn.Close()
//
// Connections are never retried. Close is idempotent on every Conn returned
// by this package.
package database
