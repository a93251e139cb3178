// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"vaginv-cli/internal/inventory"
	"vaginv-cli/internal/issue"
)

const indexName = "index.toml"

type (
	// FileStore keeps one JSON file per cache entry under Dir, plus an
	// index.toml recording provenance for each key.
	FileStore struct {
		// Dir is the cache directory. It is created on first write.
		Dir string
	}

	// IndexEntry is one row of the cache index.
	IndexEntry struct {
		Key      string    `toml:"key"`
		Source   string    `toml:"source"`
		StoredAt time.Time `toml:"stored_at"`
	}

	indexFile struct {
		Entries []IndexEntry `toml:"entries"`
	}
)

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) entryPath(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Get implements Store. A missing file is a miss; a file that exists but
// cannot be decoded is an error.
func (s *FileStore) Get(key string) (inventory.Result, bool, error) {
	data, err := os.ReadFile(s.entryPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return inventory.Result{}, false, nil
	}
	if err != nil {
		return inventory.Result{}, false, issue.NewErrorContext().
			WithOperation("reading cache entry").
			WithResource(s.entryPath(key)).
			WithSuggestion("Run 'vaginv cache clear' to discard the cache").
			Wrap(err).
			BuildError()
	}

	var res inventory.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return inventory.Result{}, false, issue.NewErrorContext().
			WithOperation("decoding cache entry").
			WithResource(s.entryPath(key)).
			WithSuggestion("Run 'vaginv cache clear' to discard the cache").
			WithSuggestion("Re-run with --no-cache to bypass the cache for one run").
			Wrap(err).
			BuildError()
	}
	return res, true, nil
}

// Set implements Store. The entry file is written first, then the index is
// updated; a crash between the two leaves a readable entry with a stale
// index, which inspection tooling tolerates.
func (s *FileStore) Set(key, sourcePath string, res inventory.Result) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory %q: %w", s.Dir, err)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := os.WriteFile(s.entryPath(key), data, 0o644); err != nil {
		return fmt.Errorf("writing cache entry %q: %w", s.entryPath(key), err)
	}

	return s.updateIndex(IndexEntry{Key: key, Source: sourcePath, StoredAt: time.Now().UTC()})
}

// Entries returns the index rows, oldest first. A missing index means an
// empty cache.
func (s *FileStore) Entries() ([]IndexEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, indexName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache index: %w", err)
	}

	var idx indexFile
	if err := toml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decoding cache index: %w", err)
	}
	return idx.Entries, nil
}

// Clear removes every cache entry and the index. A cache directory that
// never existed is not an error.
func (s *FileStore) Clear() error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Remove(s.entryPath(e.Key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing cache entry %q: %w", e.Key, err)
		}
	}
	if err := os.Remove(filepath.Join(s.Dir, indexName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing cache index: %w", err)
	}
	return nil
}

func (s *FileStore) updateIndex(entry IndexEntry) error {
	idx := indexFile{}
	data, err := os.ReadFile(filepath.Join(s.Dir, indexName))
	if err == nil {
		// A corrupt index is rebuilt rather than failing the write.
		_ = toml.Unmarshal(data, &idx)
	}

	replaced := false
	for i := range idx.Entries {
		if idx.Entries[i].Key == entry.Key {
			idx.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		idx.Entries = append(idx.Entries, entry)
	}

	out, err := toml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encoding cache index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, indexName), out, 0o644); err != nil {
		return fmt.Errorf("writing cache index: %w", err)
	}
	return nil
}
