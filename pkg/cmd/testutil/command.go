package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command with test context
func RunCommand(t *testing.T, command *cli.Command, args []string) error {
	t.Helper()

	return RunCommandWithContext(context.Background(), t, command, args)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args []string) error {
	t.Helper()

	_, err := RunCommandWithIO(ctx, t, command, args, strings.NewReader(""))
	return err
}

// RunCommandWithIO executes a command reading answers from in and returns
// everything it wrote to stdout.
func RunCommandWithIO(ctx context.Context, t *testing.T, command *cli.Command, args []string, in io.Reader) (string, error) {
	t.Helper()

	var out bytes.Buffer

	// Create a test CLI app
	app := &cli.Command{
		Name:      "test",
		Commands:  []*cli.Command{command},
		Reader:    in,
		Writer:    &out,
		ErrWriter: io.Discard,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return out.String(), err
}

// ParseCommandFlags parses command line flags for a command without running
// its action.
func ParseCommandFlags(t *testing.T, command *cli.Command, args []string) (*cli.Command, error) {
	t.Helper()

	var parsed *cli.Command

	cmdCopy := &cli.Command{
		Name:  command.Name,
		Flags: command.Flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			parsed = cmd
			return nil
		},
	}

	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{cmdCopy},
		Writer:   io.Discard,
	}

	if err := app.Run(context.Background(), append([]string{"test", command.Name}, args...)); err != nil {
		return nil, err
	}

	return parsed, nil
}
