package cmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pseudomuto/nodeseed/pkg/cmd/testutil"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/docker"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, dialect database.Dialect, args ...string) (database.ConnectionConfig, error) {
	t.Helper()

	cmd, err := testutil.ParseCommandFlags(t, bootstrapCmd(), args)
	require.NoError(t, err)

	return resolveConnection(cmd, dialect)
}

func TestBootstrapCmd_Structure(t *testing.T) {
	cmd := bootstrapCmd()
	require.Equal(t, "bootstrap", cmd.Name)
	require.NotEmpty(t, cmd.Usage)

	names := make([]string, 0, len(cmd.Flags))
	for _, f := range cmd.Flags {
		names = append(names, f.Names()[0])
	}

	require.Equal(t, []string{"driver", "env-file", "db-host", "db-port", "db-user", "db-password", "db-name"}, names)
}

func TestResolveConnection(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		vars    map[string]string
		args    []string
		dialect database.Dialect
		want    database.ConnectionConfig
	}{
		{
			name:    "env file",
			env:     "DB_HOST=db.internal\nDB_PORT=3307\nDB_USER=app\nDB_PASSWORD=pw\nDB_NAME=shop\n",
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "db.internal", Port: 3307, User: "app", Password: "pw", Database: "shop"},
		},
		{
			name:    "defaults fill missing keys",
			env:     "DB_NAME=shop\n",
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root", Database: "shop"},
		},
		{
			name:    "postgres default port",
			env:     "DB_NAME=shop\n",
			dialect: database.Postgres,
			want:    database.ConnectionConfig{Host: "localhost", Port: 5432, User: "root", Database: "shop"},
		},
		{
			name:    "flags override env file",
			env:     "DB_HOST=db.internal\nDB_PORT=3307\nDB_NAME=shop\n",
			args:    []string{"--db-host", "127.0.0.1", "--db-port", "4000", "--db-name", "other"},
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "127.0.0.1", Port: 4000, User: "root", Database: "other"},
		},
		{
			name:    "environment overrides env file",
			env:     "DB_USER=app\nDB_NAME=shop\n",
			vars:    map[string]string{"DB_USER": "ci", "DB_PASSWORD": "from-env"},
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "localhost", Port: 3306, User: "ci", Password: "from-env", Database: "shop"},
		},
		{
			name:    "quoted values",
			env:     "export DB_PASSWORD=\"#not a comment \"\nDB_NAME='shop' # inline\n",
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root", Password: "#not a comment ", Database: "shop"},
		},
		{
			name:    "unquoted hash starts a comment",
			env:     "DB_PASSWORD=s3#cret\nDB_NAME=shop # comment\n",
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root", Password: "s3", Database: "shop"},
		},
		{
			name:    "no env file",
			args:    []string{"--db-name", "shop"},
			dialect: database.MySQL,
			want:    database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root", Database: "shop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.Chdir(t, dir)

			if tt.env != "" {
				testutil.WriteFile(t, dir, ".env", tt.env)
			}

			unsetDBEnv(t)
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}

			cfg, err := resolve(t, tt.dialect, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg)
		})
	}
}

func TestResolveConnection_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		err  string
	}{
		{
			name: "missing database name",
			env:  "DB_HOST=localhost\n",
			err:  "database name is required: set DB_NAME in .env or pass --db-name",
		},
		{
			name: "missing explicit env file",
			args: []string{"--env-file", "prod.env"},
			err:  "failed to open file: prod.env",
		},
		{
			name: "invalid port in env file",
			env:  "DB_PORT=mysql\nDB_NAME=shop\n",
			err:  "invalid settings in .env",
		},
		{
			name: "invalid port flag",
			args: []string{"--db-name", "shop", "--db-port", "70000"},
			err:  "invalid connection settings",
		},
		{
			name: "unparseable env file",
			env:  "DB_NAME shop\n",
			err:  "failed to parse env file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.Chdir(t, dir)

			if tt.env != "" {
				testutil.WriteFile(t, dir, ".env", tt.env)
			}

			unsetDBEnv(t)

			_, err := resolve(t, database.MySQL, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestBootstrapCmd_UnknownDriver(t *testing.T) {
	testutil.Chdir(t, t.TempDir())
	unsetDBEnv(t)

	err := testutil.RunCommand(t, bootstrapCmd(), []string{"--driver", "oracle", "--db-name", "shop"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported database driver: "oracle"`)
}

func TestBootstrapCmd_MySQL(t *testing.T) {
	server := testutil.StartMySQL(t, docker.MySQLOptions{Password: "secret"})

	dir := t.TempDir()
	testutil.Chdir(t, dir)
	unsetDBEnv(t)
	testutil.WriteFile(t, dir, ".env", strings.Join([]string{
		"DB_HOST=" + server.Host,
		fmt.Sprintf("DB_PORT=%d", server.Port),
		"DB_USER=" + server.User,
		"DB_PASSWORD=" + server.Password,
		"DB_NAME=my_shop",
		"",
	}, "\n"))

	for range 2 {
		out, err := testutil.RunCommandWithIO(t.Context(), t, bootstrapCmd(), nil, strings.NewReader(""))
		require.NoError(t, err)
		require.Contains(t, out, "Database my_shop ready on "+server.Addr())
	}
}

func unsetDBEnv(t *testing.T) {
	t.Helper()

	testutil.UnsetEnv(t,
		consts.EnvDBHost,
		consts.EnvDBPort,
		consts.EnvDBUser,
		consts.EnvDBPassword,
		consts.EnvDBName,
	)
}
