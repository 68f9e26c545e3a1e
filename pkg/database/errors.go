package database

import "fmt"

// ConnectKind says which of the two bootstrap connections failed to open.
type ConnectKind string

const (
	// AdminConnection is opened without a database selected
	AdminConnection ConnectKind = "admin"

	// ScopedConnection is bound to the target database
	ScopedConnection ConnectKind = "scoped"
)

// ConnectError is returned when a connection cannot be established. Err is
// the driver's error, unchanged, so callers can inspect network or
// authentication failures directly.
type ConnectError struct {
	Kind     ConnectKind
	Addr     string
	Database string
	Err      error
}

func (e *ConnectError) Error() string {
	if e.Database != "" {
		return fmt.Sprintf("failed to open %s connection to %s (database %s): %v", e.Kind, e.Addr, e.Database, e.Err)
	}

	return fmt.Sprintf("failed to open %s connection to %s: %v", e.Kind, e.Addr, e.Err)
}

// Cause supports github.com/pkg/errors.Cause.
func (e *ConnectError) Cause() error { return e.Err }

// Unwrap supports errors.Is and errors.As.
func (e *ConnectError) Unwrap() error { return e.Err }
