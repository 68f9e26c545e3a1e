package project

import (
	"fmt"
	"strings"
)

type (
	// MaterializeError is returned when a project cannot be written to disk.
	// Op is "preflight", "copy" or "overlay".
	MaterializeError struct {
		Op        string
		Path      string
		Conflicts []string
		Err       error
	}

	// StepFailure records one failed installation step.
	StepFailure struct {
		Step    string
		Command string
		Err     error
	}

	// InstallError is returned when one or more installation steps fail. The
	// project files are left in place.
	InstallError struct {
		Dir      string
		Failures []StepFailure
	}
)

func (e *MaterializeError) Error() string {
	return fmt.Sprintf("materialize %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Cause supports github.com/pkg/errors.Cause.
func (e *MaterializeError) Cause() error { return e.Err }

// Unwrap supports errors.Is and errors.As.
func (e *MaterializeError) Unwrap() error { return e.Err }

func (e *InstallError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = fmt.Sprintf("%s (%s): %v", f.Step, f.Command, f.Err)
	}

	return fmt.Sprintf("dependency installation failed in %s: %s", e.Dir, strings.Join(msgs, "; "))
}

// Unwrap returns the underlying step errors.
func (e *InstallError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}

	return errs
}
