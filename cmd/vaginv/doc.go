// SPDX-License-Identifier: MPL-2.0

// Package cmd wires the vaginv CLI: Cobra command definitions, the App
// composition root, and the styling shared by all terminal output.
package cmd
