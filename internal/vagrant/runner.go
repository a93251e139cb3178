// SPDX-License-Identifier: MPL-2.0

// Package vagrant shells out to the vagrant CLI and captures its output.
//
// The runner knows nothing about inventory; it runs one subcommand in one
// working directory under a fixed timeout and classifies failures so callers
// can tell a missing binary from a non-zero exit from a hang.
package vagrant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"mvdan.cc/sh/v3/shell"

	"vaginv-cli/pkg/platform"
)

const (
	// DefaultCommand is the vagrant command line used when none is configured.
	DefaultCommand = "vagrant"

	// DefaultTimeout bounds each CLI invocation.
	DefaultTimeout = 15 * time.Second

	// VersionArgs is the probe subcommand used when no arguments are given.
	// It has no working-directory requirement.
	VersionArgs = "--version"

	// SSHConfigArgs is the subcommand whose per-path failure is recoverable:
	// it means "no running VMs here", not a broken installation.
	SSHConfigArgs = "ssh-config"
)

var (
	// ErrTimeout is the sentinel wrapped by TimeoutError.
	ErrTimeout = errors.New("vagrant command timed out")
	// ErrNonZeroExit is the sentinel wrapped by ExitError.
	ErrNonZeroExit = errors.New("vagrant command exited non-zero")
	// ErrNotFound is the sentinel wrapped by NotFoundError.
	ErrNotFound = errors.New("vagrant executable not found")
	// ErrMissingWorkDir is returned when a subcommand is run without a
	// working directory. Only the version probe may omit it.
	ErrMissingWorkDir = errors.New("a working directory is required to run a vagrant subcommand")
)

type (
	// Runner runs one vagrant subcommand and returns its captured stdout.
	// An empty args string runs the version probe.
	Runner interface {
		Run(ctx context.Context, args, dir string) (string, error)
	}

	// TimeoutError reports an invocation that exceeded its deadline.
	TimeoutError struct {
		Args  string
		Dir   string
		After time.Duration
	}

	// ExitError reports a non-zero exit status.
	ExitError struct {
		Args   string
		Dir    string
		Code   int
		Stderr string
	}

	// NotFoundError reports that the configured binary could not be located.
	NotFoundError struct {
		Binary string
	}

	// ExecRunner invokes the real vagrant CLI via os/exec.
	ExecRunner struct {
		// Command is the vagrant command line. It is split with shell
		// quoting rules, so a path with spaces works when quoted.
		// Empty means DefaultCommand.
		Command string

		// Timeout bounds each invocation. Zero means DefaultTimeout.
		Timeout time.Duration
	}
)

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("vagrant %s in %s: no response within %s", e.Args, e.Dir, e.After)
}

// Unwrap returns ErrTimeout so callers can use errors.Is for detection.
func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("vagrant %s in %s: exit status %d: %s", e.Args, e.Dir, e.Code, e.Stderr)
	}
	return fmt.Sprintf("vagrant %s in %s: exit status %d", e.Args, e.Dir, e.Code)
}

// Unwrap returns ErrNonZeroExit so callers can use errors.Is for detection.
func (e *ExitError) Unwrap() error { return ErrNonZeroExit }

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vagrant executable %q not found in PATH", e.Binary)
}

// Unwrap returns ErrNotFound so callers can use errors.Is for detection.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Run executes `<command> <args>` in dir and returns captured stdout.
//
// Empty args means the version probe, which is the only invocation allowed
// without a working directory.
func (r *ExecRunner) Run(ctx context.Context, args, dir string) (string, error) {
	if args != "" && dir == "" {
		return "", ErrMissingWorkDir
	}
	if args == "" {
		args = VersionArgs
	}

	command := r.Command
	if command == "" {
		command = DefaultCommand
	}

	argv, err := shell.Fields(command, nil)
	if err != nil {
		return "", fmt.Errorf("split vagrant command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return "", fmt.Errorf("vagrant command is empty")
	}
	argv = append(argv, strings.Fields(args)...)

	// Inside a Flatpak or Snap install the vagrant CLI lives on the host,
	// so the invocation goes through the sandbox's spawn portal.
	if prefix := platform.HostSpawnPrefix(); len(prefix) > 0 {
		argv = append(append([]string{}, prefix...), argv...)
	}

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return stdout.String(), nil
	}

	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return "", &TimeoutError{Args: args, Dir: dir, After: timeout}
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return "", &ExitError{
			Args:   args,
			Dir:    dir,
			Code:   exitErr.ExitCode(),
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}
	if errors.Is(runErr, exec.ErrNotFound) {
		return "", &NotFoundError{Binary: argv[0]}
	}
	return "", fmt.Errorf("run vagrant %s: %w", args, runErr)
}
