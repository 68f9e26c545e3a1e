package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/docker"
	"github.com/urfave/cli/v3"
)

const devStopTimeout = 30 * time.Second

// devCmd returns a CLI command that runs a disposable MySQL server matching the
// project's .env, bootstraps it and keeps it running until interrupted.
//
// The server listens on the env file's DB_PORT so the project can connect
// without changes. Use --random-port when that port is taken; the address
// actually used is printed.
//
// Example usage:
//
//	nodeseed dev
//	nodeseed dev --image mysql:8.0 --random-port
func devCmd() *cli.Command {
	return &cli.Command{
		Name:  "dev",
		Usage: "Run a disposable MySQL server for the project",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "image",
				Usage: "MySQL image to run",
				Value: consts.DefaultMySQLImage,
			},
			&cli.BoolFlag{
				Name:  "random-port",
				Usage: "bind a random host port instead of DB_PORT",
			},
		}, connectionFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := writer(cmd)

			cfg, err := resolveConnection(cmd, database.MySQL)
			if err != nil {
				return err
			}

			opts := docker.MySQLOptions{
				Image:     cmd.String("image"),
				User:      cfg.User,
				Password:  cfg.Password,
				Database:  cfg.Database,
				Ephemeral: true,
			}
			if !cmd.Bool("random-port") {
				opts.HostPort = cfg.Port
			}

			step(out, "Starting %s", opts.Image)
			db := docker.NewMySQL(opts)
			if err := db.Start(ctx); err != nil {
				return err
			}
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), devStopTimeout)
				defer cancel()

				if err := db.Stop(stopCtx); err != nil {
					warn(out, "%v", err)
					return
				}
				success(out, "MySQL stopped")
			}()

			server, err := db.Config(ctx)
			if err != nil {
				return err
			}

			if err := runBootstrap(ctx, database.MySQL, server.Scoped(cfg.Database)); err != nil {
				return errors.Wrap(err, "failed to bootstrap dev database")
			}

			success(out, "MySQL listening on %s (database %s, user %s)", server.Addr(), cfg.Database, cfg.User)
			if server.Port != cfg.Port {
				warn(out, "Port differs from %s=%d in your env file", consts.EnvDBPort, cfg.Port)
			}
			hint(out, "Press Ctrl+C to stop")

			<-ctx.Done()
			return nil
		},
	}
}
