package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/bootstrap"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/envfile"
	"github.com/pseudomuto/nodeseed/pkg/schema"
	"github.com/urfave/cli/v3"
)

// bootstrapCmd returns a CLI command that makes sure the project's database
// and submissions table exist.
//
// Connection settings are resolved in order of precedence:
//  1. --db-* flags or DB_* environment variables
//  2. the env file (.env by default)
//  3. built-in defaults (localhost, root, the driver's default port)
//
// The command is idempotent and safe to run before every server start.
//
// Example usage:
//
//	# Use the project's .env
//	nodeseed bootstrap
//
//	# Override the host for a CI database
//	DB_HOST=mysql nodeseed bootstrap
//
//	# Bootstrap a Postgres server instead
//	nodeseed bootstrap --driver postgres --db-port 5432
func bootstrapCmd() *cli.Command {
	return &cli.Command{
		Name:  "bootstrap",
		Usage: "Create the project's database and tables if they do not exist",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "driver",
				Usage: "database driver (mysql or postgres)",
				Value: database.MySQL.Name(),
			},
		}, connectionFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dialect, err := database.LookupDialect(cmd.String("driver"))
			if err != nil {
				return err
			}

			cfg, err := resolveConnection(cmd, dialect)
			if err != nil {
				return err
			}

			if err := runBootstrap(ctx, dialect, cfg); err != nil {
				return err
			}

			success(writer(cmd), "Database %s ready on %s", cfg.Database, cfg.Addr())
			return nil
		},
	}
}

func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "env file to read connection settings from",
			Value: consts.DefaultEnvFile,
		},
		&cli.StringFlag{Name: "db-host", Usage: "database host", Sources: cli.EnvVars(consts.EnvDBHost)},
		&cli.IntFlag{Name: "db-port", Usage: "database port", Sources: cli.EnvVars(consts.EnvDBPort)},
		&cli.StringFlag{Name: "db-user", Usage: "database user", Sources: cli.EnvVars(consts.EnvDBUser)},
		&cli.StringFlag{Name: "db-password", Usage: "database password", Sources: cli.EnvVars(consts.EnvDBPassword)},
		&cli.StringFlag{Name: "db-name", Usage: "database name", Sources: cli.EnvVars(consts.EnvDBName)},
	}
}

// resolveConnection layers flags and environment variables over the env file
// over defaults. A missing env file is only an error when --env-file was given.
func resolveConnection(cmd *cli.Command, dialect database.Dialect) (database.ConnectionConfig, error) {
	cfg := database.ConnectionConfig{
		Host: consts.DefaultDBHost,
		Port: dialect.DefaultPort(),
		User: consts.DefaultDBUser,
	}

	path := cmd.String("env-file")
	vars, err := envfile.Load(path)
	switch {
	case err == nil:
		if cfg, err = database.ConfigFromEnv(vars, cfg); err != nil {
			return cfg, errors.Wrapf(err, "invalid settings in %s", path)
		}
	case os.IsNotExist(errors.Cause(err)) && !cmd.IsSet("env-file"):
		slog.Debug("env file not found, using defaults", "path", path)
	default:
		return cfg, err
	}

	for flag, dest := range map[string]*string{
		"db-host":     &cfg.Host,
		"db-user":     &cfg.User,
		"db-password": &cfg.Password,
		"db-name":     &cfg.Database,
	} {
		if cmd.IsSet(flag) {
			*dest = cmd.String(flag)
		}
	}

	if cmd.IsSet("db-port") {
		cfg.Port = int(cmd.Int("db-port"))
	}

	if cfg.Database == "" {
		return cfg, errors.Errorf("database name is required: set %s in %s or pass --db-name", consts.EnvDBName, path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid connection settings")
	}

	return cfg, nil
}

func runBootstrap(ctx context.Context, dialect database.Dialect, cfg database.ConnectionConfig) error {
	factory, err := database.NewFactory(dialect, cfg)
	if err != nil {
		return err
	}

	return bootstrap.
		New(factory, bootstrap.WithLogger(slog.Default())).
		Run(ctx, schema.ForDatabase(cfg.Database))
}
