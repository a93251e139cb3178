// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNameUnresolved is returned when no unique group name can be determined
// for a configured path. It aborts the whole run.
var ErrNameUnresolved = errors.New("could not resolve group name")

// Resolve probes base, base-1, base-2, ... against the used set and returns
// the first free candidate. An empty base is unresolvable. The probe is
// bounded: with at most len(used) names taken, one of the first len(used)+1
// candidates must be free.
func Resolve(base string, used map[string]bool) (string, error) {
	if base == "" {
		return "", fmt.Errorf("%w: empty base name", ErrNameUnresolved)
	}
	for i := 0; i <= len(used); i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		if !used[candidate] {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free candidate for base %q", ErrNameUnresolved, base)
}

// NameTracker accumulates the derived group names assigned during one run.
// It is owned by a single aggregation pass and never shared.
type NameTracker struct {
	used map[string]bool
}

// NewNameTracker returns an empty tracker.
func NewNameTracker() *NameTracker {
	return &NameTracker{used: make(map[string]bool)}
}

// Assign resolves the group name for one configured path. An explicit name
// is used verbatim and does not participate in collision tracking; clashes
// between explicit names are a configuration error surfaced downstream, not
// resolved here. A derived name is probed for uniqueness and recorded.
func (t *NameTracker) Assign(explicit, path string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	base := lastSegment(path)
	name, err := Resolve(base, t.used)
	if err != nil {
		return "", fmt.Errorf("%w (path %q)", err, path)
	}
	t.used[name] = true
	return name, nil
}

// lastSegment returns the final path-separator-delimited segment of path.
func lastSegment(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
