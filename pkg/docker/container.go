package docker

import (
	"context"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

const (
	rootUser  = "root"
	mysqlPort = nat.Port("3306/tcp")
)

type (
	// MySQLOptions represents options for running MySQL in Docker
	MySQLOptions struct {
		// Image is the MySQL image to run (default: consts.DefaultMySQLImage)
		Image string

		// User is the account created in the container (default: root)
		User string

		// Password is the account password. It may only be empty for root.
		Password string

		// Database is created up front and granted to User when User is not
		// root. Root sessions create their own databases.
		Database string

		// HostPort binds the server to a fixed port on the host. Zero picks a
		// random free port.
		HostPort int

		// Ephemeral keeps the data directory on a tmpfs mount
		Ephemeral bool
	}

	// MySQL manages a disposable MySQL container
	MySQL struct {
		options   MySQLOptions
		container *mysql.MySQLContainer
	}
)

// NewMySQL creates a container manager with the given options. Nothing is
// started until Start is called.
//
// Example:
//
//	db := docker.NewMySQL(docker.MySQLOptions{Password: "secret"})
//	if err := db.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer db.Stop(ctx)
//
//	cfg, err := db.Config(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
func NewMySQL(opts MySQLOptions) *MySQL {
	if opts.Image == "" {
		opts.Image = consts.DefaultMySQLImage
	}

	if opts.User == "" {
		opts.User = rootUser
	}

	return &MySQL{options: opts}
}

// Start starts the MySQL container and waits until it accepts connections
func (c *MySQL) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	if c.options.User != rootUser && c.options.Password == "" {
		return errors.Errorf("a password is required for user %q", c.options.User)
	}

	customizers := []testcontainers.ContainerCustomizer{
		mysql.WithUsername(c.options.User),
		mysql.WithPassword(c.options.Password),
	}

	if c.options.User != rootUser && c.options.Database != "" {
		customizers = append(customizers, mysql.WithDatabase(c.options.Database))
	}

	if c.options.HostPort > 0 || c.options.Ephemeral {
		customizers = append(customizers, testcontainers.WithHostConfigModifier(c.modifyHostConfig))
	}

	ctr, err := mysql.Run(ctx, c.options.Image, customizers...)
	if err != nil {
		return errors.Wrapf(err, "failed to start MySQL container (%s)", c.options.Image)
	}

	c.container = ctr
	return nil
}

func (c *MySQL) modifyHostConfig(hc *container.HostConfig) {
	if c.options.HostPort > 0 {
		if hc.PortBindings == nil {
			hc.PortBindings = nat.PortMap{}
		}

		hc.PortBindings[mysqlPort] = []nat.PortBinding{{HostPort: strconv.Itoa(c.options.HostPort)}}
	}

	if c.options.Ephemeral {
		if hc.Tmpfs == nil {
			hc.Tmpfs = map[string]string{}
		}

		hc.Tmpfs["/var/lib/mysql"] = "rw"
	}
}

// Stop stops and removes the MySQL container
func (c *MySQL) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil // Already stopped
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop MySQL container")
	}

	return nil
}

// Config returns the admin connection settings for the running server, using
// the host and port mapped by Docker.
func (c *MySQL) Config(ctx context.Context) (database.ConnectionConfig, error) {
	if c.container == nil {
		return database.ConnectionConfig{}, errors.New("container is not running")
	}

	host, err := c.container.Host(ctx)
	if err != nil {
		return database.ConnectionConfig{}, errors.Wrap(err, "failed to get container host")
	}

	port, err := c.container.MappedPort(ctx, mysqlPort)
	if err != nil {
		return database.ConnectionConfig{}, errors.Wrap(err, "failed to get container port")
	}

	return database.ConnectionConfig{
		Host:     host,
		Port:     port.Int(),
		User:     c.options.User,
		Password: c.options.Password,
	}, nil
}

// IsRunning returns true if the container is currently running
func (c *MySQL) IsRunning() bool {
	return c.container != nil
}
