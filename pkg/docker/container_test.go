package docker_test

import (
	"context"
	"testing"
	"time"

	"github.com/pseudomuto/nodeseed/pkg/cmd/testutil"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/docker"
	"github.com/stretchr/testify/require"
)

func TestMySQL_StartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Docker test in short mode")
	}
	testutil.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	db := docker.NewMySQL(docker.MySQLOptions{Password: "secret", Ephemeral: true})
	defer func() { _ = db.Stop(ctx) }()

	require.NoError(t, db.Start(ctx))
	require.True(t, db.IsRunning())
	require.Error(t, db.Start(ctx), "second start is rejected")

	cfg, err := db.Config(ctx)
	require.NoError(t, err)
	require.Equal(t, "root", cfg.User)
	require.Equal(t, "secret", cfg.Password)
	require.NotZero(t, cfg.Port)

	factory, err := database.NewFactory(database.MySQL, cfg)
	require.NoError(t, err)

	conn, err := factory.OpenAdmin(ctx)
	require.NoError(t, err)

	names, err := conn.QueryColumn(ctx, database.MySQL.DatabaseExistsQuery(), "mysql")
	require.NoError(t, err)
	require.Equal(t, []string{"mysql"}, names)
	require.NoError(t, conn.Close())

	require.NoError(t, db.Stop(ctx))
	require.False(t, db.IsRunning())
}
