// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidVagrantCommand is returned when a VagrantCommand value is whitespace-only.
	ErrInvalidVagrantCommand = errors.New("invalid vagrant command")
	// ErrInvalidTimeout is returned when a timeout value is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout")
	// ErrInvalidCacheDirPath is returned when a CacheDirPath value is whitespace-only.
	ErrInvalidCacheDirPath = errors.New("invalid cache dir path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// VagrantCommand is the command line used to invoke the vagrant CLI.
	// The zero value ("") is valid and means "use the default".
	VagrantCommand string

	// InvalidVagrantCommandError is returned when a VagrantCommand value is
	// non-empty but whitespace-only. It wraps ErrInvalidVagrantCommand.
	InvalidVagrantCommandError struct {
		Value VagrantCommand
	}

	// CacheDirPath is a filesystem path to the cache directory.
	// The zero value ("") is valid and means "use the platform default".
	CacheDirPath string

	// InvalidCacheDirPathError is returned when a CacheDirPath value is
	// non-empty but whitespace-only. It wraps ErrInvalidCacheDirPath.
	InvalidCacheDirPathError struct {
		Value CacheDirPath
	}

	// InvalidTimeoutError is returned when a timeout value is zero or
	// negative. It wraps ErrInvalidTimeout.
	InvalidTimeoutError struct {
		Value int
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// VagrantCommand is the command line used to invoke the vagrant CLI.
		VagrantCommand VagrantCommand `json:"vagrant_binary" mapstructure:"vagrant_binary"`
		// TimeoutSecs bounds each vagrant invocation, in seconds.
		TimeoutSecs int `json:"timeout_secs" mapstructure:"timeout_secs"`
		// Cache configures where replayed results are stored.
		Cache CacheConfig `json:"cache" mapstructure:"cache"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// CacheConfig configures result storage.
	CacheConfig struct {
		// Dir overrides the platform default cache directory.
		Dir CacheDirPath `json:"dir" mapstructure:"dir"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the VagrantCommand.
func (c VagrantCommand) String() string { return string(c) }

// IsValid returns whether the VagrantCommand is valid.
// The zero value is valid; non-zero values must not be whitespace-only.
func (c VagrantCommand) IsValid() (bool, []error) {
	if c == "" {
		return true, nil
	}
	if strings.TrimSpace(string(c)) == "" {
		return false, []error{&InvalidVagrantCommandError{Value: c}}
	}
	return true, nil
}

// Error implements the error interface for InvalidVagrantCommandError.
func (e *InvalidVagrantCommandError) Error() string {
	return fmt.Sprintf("invalid vagrant command %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidVagrantCommand for errors.Is() compatibility.
func (e *InvalidVagrantCommandError) Unwrap() error { return ErrInvalidVagrantCommand }

// String returns the string representation of the CacheDirPath.
func (p CacheDirPath) String() string { return string(p) }

// IsValid returns whether the CacheDirPath is valid.
// The zero value is valid; non-zero values must not be whitespace-only.
func (p CacheDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidCacheDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCacheDirPathError.
func (e *InvalidCacheDirPathError) Error() string {
	return fmt.Sprintf("invalid cache dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidCacheDirPath for errors.Is() compatibility.
func (e *InvalidCacheDirPathError) Unwrap() error { return ErrInvalidCacheDirPath }

// Error implements the error interface for InvalidTimeoutError.
func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("invalid timeout %d: must be a positive number of seconds", e.Value)
}

// Unwrap returns ErrInvalidTimeout for errors.Is() compatibility.
func (e *InvalidTimeoutError) Unwrap() error { return ErrInvalidTimeout }

// IsValid returns whether the Config has valid fields.
// It delegates to VagrantCommand.IsValid() and Cache.Dir.IsValid(), and
// checks that TimeoutSecs is positive. Bool fields need no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.VagrantCommand.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.TimeoutSecs <= 0 {
		errs = append(errs, &InvalidTimeoutError{Value: c.TimeoutSecs})
	}
	if valid, fieldErrs := c.Cache.Dir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		VagrantCommand: "vagrant",
		TimeoutSecs:    15,
		Cache: CacheConfig{
			Dir: "", // Will use the platform cache dir if empty
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}
