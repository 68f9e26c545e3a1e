package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/bootstrap"
	"github.com/pseudomuto/nodeseed/pkg/cmd/testutil"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/docker"
	"github.com/pseudomuto/nodeseed/pkg/schema"
	"github.com/stretchr/testify/require"
)

func TestRun_MySQL(t *testing.T) {
	cfg := testutil.StartMySQL(t, docker.MySQLOptions{Password: "secret"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	factory, err := database.NewFactory(database.MySQL, cfg)
	require.NoError(t, err)

	def := schema.ForDatabase("my_shop")
	b := bootstrap.New(factory)

	t.Run("creates database and table", func(t *testing.T) {
		require.NoError(t, b.Run(ctx, def))
		require.Equal(t, schema.Submissions.ColumnNames(), columns(ctx, t, factory, "my_shop", "submissions"))
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, b.Run(ctx, def))
		require.Equal(t, schema.Submissions.ColumnNames(), columns(ctx, t, factory, "my_shop", "submissions"))
	})

	t.Run("existing database without table", func(t *testing.T) {
		conn, err := factory.OpenAdmin(ctx)
		require.NoError(t, err)
		require.NoError(t, conn.Exec(ctx, "CREATE DATABASE `empty_shop`"))
		require.NoError(t, conn.Close())

		require.NoError(t, b.Run(ctx, schema.ForDatabase("empty_shop")))
		require.Equal(t, schema.Submissions.ColumnNames(), columns(ctx, t, factory, "empty_shop", "submissions"))
	})

	t.Run("bad credentials", func(t *testing.T) {
		bad := cfg
		bad.Password = "wrong"

		badFactory, err := database.NewFactory(database.MySQL, bad)
		require.NoError(t, err)

		err = bootstrap.New(badFactory).Run(ctx, def)

		var be *bootstrap.Error
		require.True(t, errors.As(err, &be))
		require.Equal(t, bootstrap.StepConnectAdmin, be.Step)

		var ce *database.ConnectError
		require.True(t, errors.As(err, &ce))
		require.Equal(t, database.AdminConnection, ce.Kind)
	})
}

func columns(ctx context.Context, t *testing.T, f database.Factory, db, table string) []string {
	t.Helper()

	conn, err := f.OpenScoped(ctx, db)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	cols, err := conn.QueryColumn(ctx,
		"SELECT COLUMN_NAME FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION",
		db, table,
	)
	require.NoError(t, err)

	return cols
}
