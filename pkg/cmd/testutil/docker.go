package testutil

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/docker"
	"github.com/stretchr/testify/require"
)

// SkipIfNoDocker skips the test if Docker is not available
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	// Check if Docker binary exists
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	// Check if Docker daemon is running
	cmd := exec.CommandContext(t.Context(), "docker", "ps")
	if err := cmd.Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

// StartMySQL starts a MySQL container for the duration of the test and
// returns its admin connection settings. The test is skipped in short mode or
// when Docker is unavailable.
func StartMySQL(t *testing.T, opts docker.MySQLOptions) database.ConnectionConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Docker test in short mode")
	}
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	opts.Ephemeral = true
	db := docker.NewMySQL(opts)
	t.Cleanup(func() {
		// The start context is gone by now.
		_ = db.Stop(context.Background())
	})

	require.NoError(t, db.Start(ctx), "Failed to start MySQL container")

	cfg, err := db.Config(ctx)
	require.NoError(t, err, "Failed to get MySQL connection settings")

	return cfg
}
