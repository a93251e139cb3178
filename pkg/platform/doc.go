// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes runtime.GOOS string constants and detects
// application sandboxes (Flatpak, Snap) so the vagrant CLI can be spawned
// on the host system from inside a sandboxed install.
package platform
