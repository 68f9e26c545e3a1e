package cmd

import (
	"testing"

	"github.com/pseudomuto/nodeseed/pkg/cmd/testutil"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/stretchr/testify/require"
)

func TestDevCmd_Flags(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	cmd, err := testutil.ParseCommandFlags(t, devCmd(), nil)
	require.NoError(t, err)
	require.Equal(t, consts.DefaultMySQLImage, cmd.String("image"))
	require.False(t, cmd.Bool("random-port"))
	require.Equal(t, consts.DefaultEnvFile, cmd.String("env-file"))

	cmd, err = testutil.ParseCommandFlags(t, devCmd(), []string{"--image", "mysql:8.0", "--random-port"})
	require.NoError(t, err)
	require.Equal(t, "mysql:8.0", cmd.String("image"))
	require.True(t, cmd.Bool("random-port"))
}

func TestDevCmd_RequiresDatabaseName(t *testing.T) {
	testutil.Chdir(t, t.TempDir())
	unsetDBEnv(t)

	err := testutil.RunCommand(t, devCmd(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "database name is required")
}

func TestDevCmd_NonRootUserNeedsPassword(t *testing.T) {
	testutil.Chdir(t, t.TempDir())
	unsetDBEnv(t)

	err := testutil.RunCommand(t, devCmd(), []string{"--db-name", "shop", "--db-user", "app"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `a password is required for user "app"`)
}
