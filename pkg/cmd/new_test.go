package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/cmd/testutil"
	"github.com/pseudomuto/nodeseed/pkg/config"
	"github.com/pseudomuto/nodeseed/pkg/project"
	"github.com/pseudomuto/nodeseed/pkg/scaffold"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	dirs []string
	cmds []string
	err  error
}

func (r *recordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.dirs = append(r.dirs, dir)
	r.cmds = append(r.cmds, strings.Join(append([]string{name}, args...), " "))
	return r.err
}

func runNew(t *testing.T, cfg *config.Config, runner project.Runner, input string, args ...string) (string, error) {
	t.Helper()

	testutil.Chdir(t, t.TempDir())
	return testutil.RunCommandWithIO(t.Context(), t, newCmd(cfg, runner), args, strings.NewReader(input))
}

func TestNewCmd(t *testing.T) {
	cfg := config.Defaults()
	runner := &recordingRunner{}

	out, err := runNew(t, cfg, runner, "", "my-shop", "--yes", "--db-password", "secret")
	require.NoError(t, err)
	require.Contains(t, out, `Project "my-shop" created`)
	require.Contains(t, out, "cd my-shop")

	testutil.RequireFileContains(t, filepath.Join("my-shop", ".env"),
		"DB_HOST=localhost\n",
		"DB_PORT=3306\n",
		"DB_USER=root\n",
		"DB_PASSWORD=secret\n",
		"DB_NAME=my_shop\n",
	)
	testutil.RequireFileContains(t, filepath.Join("my-shop", "package.json"), `"name": "my-shop"`)
	require.FileExists(t, filepath.Join("my-shop", "tsconfig.json"))
	require.FileExists(t, filepath.Join("my-shop", "src", "index.ts"))

	require.Equal(t, []string{"my-shop", "my-shop"}, runner.dirs)
	require.Equal(t, []string{
		"npm add " + strings.Join(cfg.Packages.Prod, " "),
		"npm add -D " + strings.Join(cfg.Packages.Dev, " "),
	}, runner.cmds)
}

func TestNewCmd_Prompts(t *testing.T) {
	runner := &recordingRunner{}

	// name, database, user, password, host, port
	input := "Bad Name\nmy-app\n\napp\npw\n\n3307\n"

	out, err := runNew(t, config.Defaults(), runner, input, "--skip-install")
	require.NoError(t, err)
	require.Contains(t, out, "invalid project name")
	require.Contains(t, out, "Skipping package installation")
	require.Empty(t, runner.cmds)

	testutil.RequireFileContains(t, filepath.Join("my-app", ".env"),
		"DB_PORT=3307\n",
		"DB_USER=app\n",
		"DB_PASSWORD=pw\n",
		"DB_NAME=my_app\n",
	)
}

func TestNewCmd_FlagsSkipPrompts(t *testing.T) {
	_, err := runNew(t, config.Defaults(), &recordingRunner{}, "",
		"my-shop",
		"--db-name", "shop",
		"--db-user", "admin",
		"--db-password", "#not a comment ",
		"--db-host", "db.internal",
		"--db-port", "3307",
		"--skip-install",
	)
	require.NoError(t, err)

	testutil.RequireFileContains(t, filepath.Join("my-shop", ".env"),
		"DB_HOST=db.internal\n",
		"DB_PORT=3307\n",
		"DB_USER=admin\n",
		"DB_PASSWORD='#not a comment '\n",
		"DB_NAME=shop\n",
	)
}

func TestNewCmd_ConfigDefaults(t *testing.T) {
	cfg := config.Defaults()
	cfg.Defaults.ProjectName = "shop"
	cfg.Defaults.DBHost = "db.internal"
	cfg.Packages.Manager = "pnpm"

	runner := &recordingRunner{}
	_, err := runNew(t, cfg, runner, "", "--yes")
	require.NoError(t, err)

	testutil.RequireFileContains(t, filepath.Join("shop", ".env"), "DB_HOST=db.internal\n", "DB_NAME=shop\n")
	require.Len(t, runner.cmds, 2)
	require.True(t, strings.HasPrefix(runner.cmds[0], "pnpm add "))
}

func TestNewCmd_DryRun(t *testing.T) {
	runner := &recordingRunner{}

	out, err := runNew(t, config.Defaults(), runner, "", "my-shop", "--yes", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "Would create my-shop/ with:")
	require.Contains(t, out, "  package.json\n")
	require.Contains(t, out, "  src/index.ts\n")
	require.Contains(t, out, "--- .env\n# Database Configuration\n")
	require.Contains(t, out, "--- tsconfig.json\n")

	require.NoDirExists(t, "my-shop")
	require.Empty(t, runner.cmds)
}

func TestNewCmd_InvalidName(t *testing.T) {
	_, err := runNew(t, config.Defaults(), &recordingRunner{}, "", "My Shop", "--yes")
	require.Error(t, err)

	var ve *scaffold.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "project name", ve.Field)
	require.NoDirExists(t, "My Shop")
}

func TestNewCmd_Conflicts(t *testing.T) {
	testutil.Chdir(t, t.TempDir())
	testutil.WriteFile(t, "my-shop", ".env", "DB_NAME=keep\n")

	_, err := testutil.RunCommandWithIO(t.Context(), t,
		newCmd(config.Defaults(), &recordingRunner{}),
		[]string{"my-shop", "--yes", "--skip-install"},
		strings.NewReader(""),
	)
	require.Error(t, err)

	var me *project.MaterializeError
	require.True(t, errors.As(err, &me))
	require.Contains(t, me.Conflicts, ".env")

	content, err := os.ReadFile(filepath.Join("my-shop", ".env"))
	require.NoError(t, err)
	require.Equal(t, "DB_NAME=keep\n", string(content))
}

func TestNewCmd_InstallFailure(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exit status 1")}

	_, err := runNew(t, config.Defaults(), runner, "", "my-shop", "--yes")
	require.Error(t, err)

	var ie *project.InstallError
	require.True(t, errors.As(err, &ie))
	require.Len(t, ie.Failures, 2)

	// The project is left in place so installation can be retried by hand.
	require.FileExists(t, filepath.Join("my-shop", "package.json"))
}

func TestNewCmd_Template(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "README.md", "custom\n")

	_, err := runNew(t, config.Defaults(), &recordingRunner{}, "",
		"my-shop", "--yes", "--skip-install", "--template", dir)
	require.NoError(t, err)

	testutil.RequireFileContains(t, filepath.Join("my-shop", "README.md"), "custom")
	require.FileExists(t, filepath.Join("my-shop", "package.json"))
	require.NoFileExists(t, filepath.Join("my-shop", "src", "index.ts"))
}
