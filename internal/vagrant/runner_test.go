// SPDX-License-Identifier: MPL-2.0

package vagrant

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive POSIX utilities as stand-in binaries")
	}
}

func TestExecRunner_VersionProbeNeedsNoDir(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	r := &ExecRunner{Command: "echo"}
	out, err := r.Run(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, VersionArgs) {
		t.Errorf("Run() stdout = %q, want the %s probe argument echoed back", out, VersionArgs)
	}
}

func TestExecRunner_ArgsRequireDir(t *testing.T) {
	t.Parallel()

	r := &ExecRunner{Command: "echo"}
	_, err := r.Run(context.Background(), SSHConfigArgs, "")
	if !errors.Is(err, ErrMissingWorkDir) {
		t.Errorf("Run() error = %v, want ErrMissingWorkDir", err)
	}
}

func TestExecRunner_CapturesStdout(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	r := &ExecRunner{Command: "echo"}
	out, err := r.Run(context.Background(), "ssh-config", t.TempDir())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(out) != "ssh-config" {
		t.Errorf("Run() stdout = %q, want %q", strings.TrimSpace(out), "ssh-config")
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	// `sh -c "exit 3"` stands in for a failing vagrant invocation.
	r := &ExecRunner{Command: `sh -c "exit 3" --`}
	_, err := r.Run(context.Background(), "status", t.TempDir())
	if !errors.Is(err, ErrNonZeroExit) {
		t.Fatalf("Run() error = %v, want ErrNonZeroExit", err)
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %T, want *ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("ExitError.Code = %d, want 3", exitErr.Code)
	}
}

func TestExecRunner_NotFound(t *testing.T) {
	t.Parallel()

	r := &ExecRunner{Command: "definitely-not-a-real-binary-4b1d"}
	_, err := r.Run(context.Background(), "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Run() error = %v, want ErrNotFound", err)
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	r := &ExecRunner{Command: "sleep", Timeout: 50 * time.Millisecond}
	_, err := r.Run(context.Background(), "5", t.TempDir())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Run() error = %v, want ErrTimeout", err)
	}

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("Run() error = %T, want *TimeoutError", err)
	}
	if timeoutErr.After != 50*time.Millisecond {
		t.Errorf("TimeoutError.After = %s, want 50ms", timeoutErr.After)
	}
}

func TestExecRunner_QuotedCommandSplitting(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	// Shell-style splitting keeps quoted segments together.
	r := &ExecRunner{Command: `echo "one two"`}
	out, err := r.Run(context.Background(), "three", t.TempDir())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(out) != "one two three" {
		t.Errorf("Run() stdout = %q, want %q", strings.TrimSpace(out), "one two three")
	}
}
