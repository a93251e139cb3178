// SPDX-License-Identifier: MPL-2.0

// Package config loads the vaginv configuration file.
//
// Configuration lives in a CUE file at the platform config directory
// (for example ~/.config/vaginv/config.cue on Linux), validated against an
// embedded schema and merged into defaults via Viper. A missing file is not
// an error; everything has a usable default.
package config
