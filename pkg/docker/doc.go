// Package docker runs disposable MySQL servers in Docker, for local
// development of generated projects and for integration tests.
//
// Containers are managed through testcontainers-go, so they are cleaned up
// even when the process exits unexpectedly.
//
// # Usage Example
//
//	db := docker.NewMySQL(docker.MySQLOptions{
//		Password:  "secret",
//		Database:  "my_shop",
//		HostPort:  3306,
//		Ephemeral: true,
//	})
//
//	ctx := context.Background()
//	defer db.Stop(ctx)
//
//	if err := db.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg, err := db.Config(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	factory, _ := database.NewFactory(database.MySQL, cfg)
//	err = bootstrap.New(factory).Run(ctx, schema.ForDatabase("my_shop"))
//
// Only the root account may have an empty password. For any other user the
// database named in the options is created by the server on startup and
// granted to that user, since it cannot create databases itself.
package docker
