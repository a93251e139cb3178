// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

// Sandbox type constants.
const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// detectOnce caches the detection result for the lifetime of the process.
// Sandbox type is immutable during process lifetime, making this safe.
//
// INVARIANT: detectSandboxFrom MUST NOT panic; sync.OnceValue re-raises a
// panic on every subsequent call.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// DetectSandbox returns the sandbox the current process runs in, if any.
//
// Detection methods:
//   - Flatpak: existence of /.flatpak-info
//   - Snap: the SNAP_NAME environment variable
func DetectSandbox() SandboxType {
	return detectOnce()
}

// IsInSandbox returns true if the current process is running inside a sandbox.
func IsInSandbox() bool {
	return DetectSandbox() != SandboxNone
}

// HostSpawnPrefix returns the argv prefix needed to run a command on the
// host system instead of inside the sandbox. It is empty when not sandboxed.
//
// For Flatpak the prefix is ["flatpak-spawn", "--host"]; for Snap it is
// ["snap", "run", "--shell"].
func HostSpawnPrefix() []string {
	return SpawnPrefixFor(DetectSandbox())
}

// SpawnPrefixFor returns the host spawn prefix for a given sandbox type.
// This is a pure function that does not depend on cached detection state,
// making it directly testable without process-wide side effects.
func SpawnPrefixFor(st SandboxType) []string {
	switch st {
	case SandboxFlatpak:
		return []string{"flatpak-spawn", "--host"}
	case SandboxSnap:
		return []string{"snap", "run", "--shell"}
	default:
		return nil
	}
}

// detectSandboxFrom performs sandbox detection using the provided lookup
// functions so tests can inject behavior without process-wide state.
func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// Flatpak takes precedence; /.flatpak-info is always present inside
	// Flatpak sandboxes.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}
	return SandboxNone
}

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
