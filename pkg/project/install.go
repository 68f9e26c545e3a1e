package project

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/consts"
)

type (
	// Runner runs an external command in dir.
	Runner interface {
		Run(ctx context.Context, dir, name string, args ...string) error
	}

	// ExecRunner runs commands with os/exec, streaming their output.
	ExecRunner struct {
		Stdout io.Writer
		Stderr io.Writer
	}

	// Installer adds packages to a project with a package manager.
	Installer struct {
		manager string
		runner  Runner
	}
)

// NewInstaller returns an installer using manager (npm, pnpm, yarn, ...). An
// empty manager defaults to npm and a nil runner to an ExecRunner attached to
// the process's stdout and stderr.
//
// Example:
//
//	installer := project.NewInstaller("npm", nil)
//	err := installer.Install(ctx, "my-shop", consts.DefaultProdPackages, consts.DefaultDevPackages)
func NewInstaller(manager string, runner Runner) *Installer {
	if manager == "" {
		manager = consts.DefaultPackageManager
	}

	if runner == nil {
		runner = &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	}

	return &Installer{manager: manager, runner: runner}
}

// Install adds the production packages and then the development packages to
// the project in dir. The two steps are independent: a failure in the first
// does not skip the second. Failures are collected into an *InstallError.
// Empty package lists are skipped.
func (i *Installer) Install(ctx context.Context, dir string, prod, dev []string) error {
	steps := []struct {
		name  string
		flags []string
		pkgs  []string
	}{
		{name: "production dependencies", flags: []string{"add"}, pkgs: prod},
		{name: "development dependencies", flags: []string{"add", "-D"}, pkgs: dev},
	}

	var failures []StepFailure
	for _, step := range steps {
		if len(step.pkgs) == 0 {
			continue
		}

		args := append(append([]string{}, step.flags...), step.pkgs...)
		if err := i.runner.Run(ctx, dir, i.manager, args...); err != nil {
			failures = append(failures, StepFailure{
				Step:    step.name,
				Command: i.manager + " " + strings.Join(args, " "),
				Err:     err,
			})
		}
	}

	if len(failures) > 0 {
		return &InstallError{Dir: dir, Failures: failures}
	}

	return nil
}

// Run runs name with args in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "failed to run %s", name)
	}

	return nil
}
