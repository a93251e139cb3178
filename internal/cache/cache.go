// SPDX-License-Identifier: MPL-2.0

// Package cache decides when a previously stored aggregation result is
// replayed instead of recomputed.
//
// Caching is disabled by default. When enabled, a hit replays the stored
// result verbatim and the whole extraction pipeline is bypassed; a miss runs
// the pipeline and stores its output. Stored content is never validated
// against the current configuration — staleness is the caller's problem,
// which matches how Ansible's own inventory cache behaves.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"

	"vaginv-cli/internal/inventory"
)

type (
	// Store is the external key-value store holding serialized
	// aggregation results. The pipeline only decides when to call it.
	Store interface {
		// Get returns the stored result for key. ok is false on a miss;
		// an unreadable entry is an error, not a miss.
		Get(key string) (inventory.Result, bool, error)

		// Set stores the result under key. sourcePath is recorded as
		// provenance for inspection tooling.
		Set(key, sourcePath string, res inventory.Result) error
	}

	// Manager wraps a Store with the enable/replay/store decision.
	Manager struct {
		store   Store
		enabled bool
	}
)

// Key derives the stable cache key from the inventory source's own path.
// Two runs over the same source file share a key; the content of the source
// does not participate.
func Key(sourcePath string) string {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		abs = sourcePath
	}
	sum := sha256.Sum256([]byte(abs))
	return "vagrant_" + hex.EncodeToString(sum[:])[:16]
}

// NewManager returns a Manager over store. With enabled false every Fetch
// misses and Persist is a no-op.
func NewManager(store Store, enabled bool) *Manager {
	return &Manager{store: store, enabled: enabled}
}

// Enabled reports whether caching is active.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Fetch returns the stored result for key when caching is enabled and an
// entry exists. ok false means the caller must recompute.
func (m *Manager) Fetch(key string) (inventory.Result, bool, error) {
	if !m.enabled {
		return inventory.Result{}, false, nil
	}
	return m.store.Get(key)
}

// Persist stores a freshly computed result when caching is enabled.
func (m *Manager) Persist(key, sourcePath string, res inventory.Result) error {
	if !m.enabled {
		return nil
	}
	return m.store.Set(key, sourcePath, res)
}
