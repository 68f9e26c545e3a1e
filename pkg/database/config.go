package database

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/consts"
)

// ConnectionConfig holds everything needed to reach a database server. It is
// passed by value and never persisted.
//
// Two variants are used during a bootstrap: an admin config (Database empty)
// for catalog queries and CREATE DATABASE, and a scoped config bound to one
// database for table DDL. Use Admin and Scoped to derive them.
type ConnectionConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Validate checks that the config can be used to open a connection. Host and
// User are required and Port must be a valid TCP port. An empty Password is
// allowed.
func (c ConnectionConfig) Validate() error {
	if c.Host == "" {
		return errors.New("host is required")
	}

	if c.User == "" {
		return errors.New("user is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	return nil
}

// Addr returns the host:port pair for the server.
func (c ConnectionConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Admin returns a copy of the config with no database selected.
func (c ConnectionConfig) Admin() ConnectionConfig {
	c.Database = ""
	return c
}

// Scoped returns a copy of the config bound to the named database.
func (c ConnectionConfig) Scoped(database string) ConnectionConfig {
	c.Database = database
	return c
}

// ConfigFromEnv builds a ConnectionConfig from DB_* variables, as written to a
// generated project's .env file. Missing keys keep the value from base so
// callers can layer sources on top of defaults.
//
// Example:
//
//	vars, _ := envfile.Load(".env")
//	cfg, err := database.ConfigFromEnv(vars, database.ConnectionConfig{Port: 3306})
func ConfigFromEnv(vars map[string]string, base ConnectionConfig) (ConnectionConfig, error) {
	cfg := base

	if v, ok := vars[consts.EnvDBHost]; ok {
		cfg.Host = v
	}

	if v, ok := vars[consts.EnvDBPort]; ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid %s: %q", consts.EnvDBPort, v)
		}
		cfg.Port = port
	}

	if v, ok := vars[consts.EnvDBUser]; ok {
		cfg.User = v
	}

	if v, ok := vars[consts.EnvDBPassword]; ok {
		cfg.Password = v
	}

	if v, ok := vars[consts.EnvDBName]; ok {
		cfg.Database = v
	}

	return cfg, nil
}
