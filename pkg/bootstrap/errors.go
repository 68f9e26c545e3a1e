package bootstrap

import (
	"fmt"
	"strings"
)

// Error is returned when a bootstrap step fails. Err is the underlying cause,
// for example a *database.ConnectError or a driver error.
type Error struct {
	Step     Step
	Database string
	Table    string
	Err      error
}

func (e *Error) Error() string {
	var target strings.Builder
	if e.Database != "" {
		fmt.Fprintf(&target, " (database %s", e.Database)
		if e.Table != "" {
			fmt.Fprintf(&target, ", table %s", e.Table)
		}
		target.WriteString(")")
	}

	return fmt.Sprintf("bootstrap failed at %s%s: %v", e.Step, target.String(), e.Err)
}

// Cause supports github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Unwrap supports errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }
