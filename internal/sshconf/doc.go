// SPDX-License-Identifier: MPL-2.0

// Package sshconf extracts per-VM connection records from the multi-host
// output of `vagrant ssh-config`.
//
// The input is semi-structured: blocks introduced by a `Host` line, followed
// by indented directive lines in no guaranteed order. The scanner is a
// two-state line machine that emits a record the moment its fifth mandatory
// field arrives and silently drops blocks that never complete. It is not a
// general-purpose SSH client-config parser; it understands exactly the four
// directives vagrant emits that matter for inventory.
package sshconf
