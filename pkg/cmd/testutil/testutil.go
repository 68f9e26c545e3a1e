package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Chdir changes into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	pwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() { _ = os.Chdir(pwd) })
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// RequireFileContains asserts that the file at path contains each of the
// expected strings.
func RequireFileContains(t *testing.T, path string, expected ...string) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)

	for _, e := range expected {
		require.Contains(t, string(content), e, "File should contain: %s", e)
	}
}

// UnsetEnv removes the given environment variables for the duration of the
// test.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		// Setenv registers the restore.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
