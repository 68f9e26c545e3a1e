package database_test

import (
	"testing"

	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/stretchr/testify/require"
)

func TestConnectionConfig_Validate(t *testing.T) {
	valid := database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*database.ConnectionConfig)
		errMsg string
	}{
		{name: "missing host", mutate: func(c *database.ConnectionConfig) { c.Host = "" }, errMsg: "host is required"},
		{name: "missing user", mutate: func(c *database.ConnectionConfig) { c.User = "" }, errMsg: "user is required"},
		{name: "port zero", mutate: func(c *database.ConnectionConfig) { c.Port = 0 }, errMsg: "port must be between"},
		{name: "port too large", mutate: func(c *database.ConnectionConfig) { c.Port = 65536 }, errMsg: "port must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("empty password allowed", func(t *testing.T) {
		cfg := valid
		cfg.Password = ""
		require.NoError(t, cfg.Validate())
	})
}

func TestConnectionConfig_Variants(t *testing.T) {
	cfg := database.ConnectionConfig{Host: "::1", Port: 3306, User: "root", Database: "shop"}

	require.Equal(t, "[::1]:3306", cfg.Addr())
	require.Empty(t, cfg.Admin().Database)
	require.Equal(t, "other", cfg.Scoped("other").Database)
	require.Equal(t, "shop", cfg.Database, "variants must not mutate the receiver")
}

func TestConfigFromEnv(t *testing.T) {
	base := database.ConnectionConfig{Host: "localhost", Port: 3306, User: "root"}

	t.Run("overrides present keys", func(t *testing.T) {
		cfg, err := database.ConfigFromEnv(map[string]string{
			"DB_HOST":     "db",
			"DB_PORT":     "3307",
			"DB_USER":     "app",
			"DB_PASSWORD": "secret",
			"DB_NAME":     "my_shop",
		}, base)
		require.NoError(t, err)
		require.Equal(t, database.ConnectionConfig{
			Host:     "db",
			Port:     3307,
			User:     "app",
			Password: "secret",
			Database: "my_shop",
		}, cfg)
	})

	t.Run("keeps base for missing keys", func(t *testing.T) {
		cfg, err := database.ConfigFromEnv(map[string]string{"DB_NAME": "x"}, base)
		require.NoError(t, err)
		require.Equal(t, "localhost", cfg.Host)
		require.Equal(t, 3306, cfg.Port)
		require.Equal(t, "x", cfg.Database)
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := database.ConfigFromEnv(map[string]string{"DB_PORT": "abc"}, base)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
