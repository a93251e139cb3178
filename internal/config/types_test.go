// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestConfigIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		valid    bool
		sentinel error
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{
			name:     "zero timeout",
			mutate:   func(c *Config) { c.TimeoutSecs = 0 },
			sentinel: ErrInvalidTimeout,
		},
		{
			name:     "negative timeout",
			mutate:   func(c *Config) { c.TimeoutSecs = -5 },
			sentinel: ErrInvalidTimeout,
		},
		{
			name:     "whitespace vagrant command",
			mutate:   func(c *Config) { c.VagrantCommand = "   " },
			sentinel: ErrInvalidVagrantCommand,
		},
		{
			name:     "whitespace cache dir",
			mutate:   func(c *Config) { c.Cache.Dir = "  " },
			sentinel: ErrInvalidCacheDirPath,
		},
		{
			name:   "empty vagrant command is the zero value",
			mutate: func(c *Config) { c.VagrantCommand = "" },
			valid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			valid, errs := cfg.IsValid()
			if valid != tt.valid {
				t.Fatalf("IsValid() = %v, want %v (errs: %v)", valid, tt.valid, errs)
			}
			if tt.valid {
				return
			}
			if len(errs) != 1 {
				t.Fatalf("got %d top-level errors, want 1", len(errs))
			}
			if !errors.Is(errs[0], ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", errs[0])
			}
			var invalid *InvalidConfigError
			if !errors.As(errs[0], &invalid) {
				t.Fatalf("error %v is not an *InvalidConfigError", errs[0])
			}
			found := false
			for _, fieldErr := range invalid.FieldErrors {
				if errors.Is(fieldErr, tt.sentinel) {
					found = true
				}
			}
			if !found {
				t.Errorf("field errors %v do not include %v", invalid.FieldErrors, tt.sentinel)
			}
		})
	}
}
