// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		used    map[string]bool
		want    string
		wantErr bool
	}{
		{name: "free base", base: "demo", used: map[string]bool{}, want: "demo"},
		{name: "first suffix", base: "demo", used: map[string]bool{"demo": true}, want: "demo-1"},
		{name: "second suffix", base: "demo", used: map[string]bool{"demo": true, "demo-1": true}, want: "demo-2"},
		{name: "unrelated names ignored", base: "demo", used: map[string]bool{"other": true}, want: "demo"},
		{name: "empty base", base: "", used: map[string]bool{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.base, tt.used)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrNameUnresolved) {
				t.Errorf("Resolve() error %v does not wrap ErrNameUnresolved", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNameTracker_Assign(t *testing.T) {
	t.Parallel()

	tr := NewNameTracker()

	// Explicit names pass through verbatim and are not tracked.
	got, err := tr.Assign("k8s", "/vagrant/k8s-demo")
	if err != nil || got != "k8s" {
		t.Fatalf("Assign(explicit) = %q, %v; want k8s, nil", got, err)
	}

	// Two paths sharing a basename disambiguate in processing order.
	first, err := tr.Assign("", "/home/a/demo")
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	second, err := tr.Assign("", "/home/b/demo")
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if first != "demo" || second != "demo-1" {
		t.Errorf("Assign() = %q, %q; want demo, demo-1", first, second)
	}

	// An explicit name equal to a derived one is not deduplicated.
	again, err := tr.Assign("demo", "/elsewhere/demo")
	if err != nil || again != "demo" {
		t.Errorf("Assign(explicit demo) = %q, %v; want demo verbatim", again, err)
	}
}

func TestNameTracker_Assign_EmptyBasename(t *testing.T) {
	t.Parallel()

	tr := NewNameTracker()
	_, err := tr.Assign("", "/trailing/slash/")
	if !errors.Is(err, ErrNameUnresolved) {
		t.Errorf("Assign() error = %v, want ErrNameUnresolved", err)
	}
}
