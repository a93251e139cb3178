// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{name: "success", code: 0},
		{name: "generic failure", code: 1},
		{name: "upper bound", code: 255},
		{name: "negative", code: -1, wantErr: true},
		{name: "above range", code: 256, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.code.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidExitCode", err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false")
	}
	if ExitCode(2).IsSuccess() {
		t.Error("ExitCode(2).IsSuccess() = true")
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("String() = %q, want 42", got)
	}
}
