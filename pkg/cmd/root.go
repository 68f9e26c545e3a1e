package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/config"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main nodeseed CLI application with the given
// version and command-line arguments.
//
// Global Flags:
//   - --dir, -d: Working directory (defaults to current directory)
//   - --config, -c: Configuration file (defaults to nodeseed.yaml, $NODESEED_CONFIG)
//   - --verbose: Enable debug logging
//
// The command runs in the background once the fx application has started so
// that interactive prompts are not bound by the start timeout. Stopping the
// application (for example on SIGINT) cancels the command's context and waits
// for it to return.
//
// Example usage:
//
//	nodeseed new my-shop
//	nodeseed --dir my-shop bootstrap
//	nodeseed --dir my-shop dev
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "nodeseed",
		Usage: "Scaffold Node.js + MySQL projects and bootstrap their databases",
		Description: `nodeseed creates new Express and TypeScript projects backed by MySQL,
and ensures the database and tables they need exist before they start.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the working directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the nodeseed config file",
				Sources: cli.EnvVars(config.EnvConfigFile),
				Value:   consts.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before:   before(p.Config),
		Commands: p.Commands,
	}

	ctx, cancel := context.WithCancel(p.Ctx)
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				code := 0
				if err := app.Run(ctx, p.Args); err != nil {
					slog.Error("Error running command", "err", err)
					code = 1
				}

				_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()

			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

// before changes to the --dir directory, configures logging and reloads the
// configuration in place so commands holding *config.Config see the values
// for the selected directory and file.
func before(cfg *config.Config) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if err := os.Chdir(cmd.String("dir")); err != nil {
			return ctx, errors.Wrapf(err, "failed to change to directory: %s", cmd.String("dir"))
		}

		level := slog.LevelInfo
		if cmd.Bool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(errWriter(cmd), &slog.HandlerOptions{Level: level})))

		loaded, err := config.Resolve(cmd.String("config"), cmd.IsSet("config"))
		if err != nil {
			return ctx, errors.Wrap(err, "failed to load configuration")
		}

		if cfg != nil {
			*cfg = *loaded
		}

		return ctx, nil
	}
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}

	return os.Stdin
}
