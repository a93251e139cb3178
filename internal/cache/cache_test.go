// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vaginv-cli/internal/inventory"
)

func sampleResult() inventory.Result {
	return inventory.Result{
		Groups: []inventory.Group{
			{
				Name: "k8s",
				VMs: []inventory.Record{
					{Name: "node1", Host: "127.0.0.1", User: "vagrant", Port: "2222", PrivateKey: "/k/id_rsa"},
				},
			},
		},
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	k := Key("/some/dir/vagrant.yml")
	if !strings.HasPrefix(k, "vagrant_") {
		t.Errorf("Key() = %q, want vagrant_ prefix", k)
	}
	if k != Key("/some/dir/vagrant.yml") {
		t.Error("Key() is not stable for the same path")
	}
	if k == Key("/other/dir/vagrant.yml") {
		t.Error("Key() collides for distinct paths")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	want := sampleResult()

	if err := store.Set("vagrant_abc", "/src/vagrant.yml", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := store.Get("vagrant_abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false after Set()")
	}
	if len(got.Groups) != 1 || got.Groups[0].Name != "k8s" {
		t.Errorf("Get() groups = %+v, want one group named k8s", got.Groups)
	}
	if got.Groups[0].VMs[0].Port != "2222" {
		t.Errorf("Get() port = %q, want 2222", got.Groups[0].VMs[0].Port)
	}
}

func TestFileStoreMiss(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	_, ok, err := store.Get("vagrant_missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for a key never stored")
	}
}

func TestFileStoreCorruptEntry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "vagrant_bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, ok, err := store.Get("vagrant_bad")
	if err == nil {
		t.Fatal("Get() error = nil for a corrupt entry, want error")
	}
	if ok {
		t.Error("Get() ok = true for a corrupt entry")
	}
}

func TestFileStoreIndex(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	if err := store.Set("vagrant_one", "/a/vagrant.yml", sampleResult()); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("vagrant_two", "/b/vagrant.yml", sampleResult()); err != nil {
		t.Fatal(err)
	}
	// A rewrite of an existing key replaces its row instead of appending.
	if err := store.Set("vagrant_one", "/a/vagrant.yml", sampleResult()); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(entries))
	}
	if entries[0].Key != "vagrant_one" || entries[0].Source != "/a/vagrant.yml" {
		t.Errorf("Entries()[0] = %+v", entries[0])
	}
	if entries[1].Key != "vagrant_two" {
		t.Errorf("Entries()[1] = %+v", entries[1])
	}
	for _, e := range entries {
		if e.StoredAt.IsZero() {
			t.Errorf("entry %q has zero stored_at", e.Key)
		}
	}
}

func TestFileStoreClear(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	if err := store.Set("vagrant_one", "/a/vagrant.yml", sampleResult()); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, ok, _ := store.Get("vagrant_one"); ok {
		t.Error("Get() ok = true after Clear()")
	}
	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Entries() len = %d after Clear(), want 0", len(entries))
	}
}

func TestFileStoreClearEmptyDir(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "never-created"))
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() error = %v on a cache that never existed", err)
	}
}

// countingStore records how often the underlying store is touched.
type countingStore struct {
	gets, sets int
	stored     map[string]inventory.Result
}

func (c *countingStore) Get(key string) (inventory.Result, bool, error) {
	c.gets++
	res, ok := c.stored[key]
	return res, ok, nil
}

func (c *countingStore) Set(key, _ string, res inventory.Result) error {
	c.sets++
	if c.stored == nil {
		c.stored = map[string]inventory.Result{}
	}
	c.stored[key] = res
	return nil
}

func TestManagerDisabled(t *testing.T) {
	t.Parallel()

	store := &countingStore{}
	mgr := NewManager(store, false)

	if _, ok, err := mgr.Fetch("k"); ok || err != nil {
		t.Errorf("Fetch() = (ok=%v, err=%v), want miss with nil error", ok, err)
	}
	if err := mgr.Persist("k", "/src", sampleResult()); err != nil {
		t.Errorf("Persist() error = %v", err)
	}
	if store.gets != 0 || store.sets != 0 {
		t.Errorf("disabled manager touched the store: gets=%d sets=%d", store.gets, store.sets)
	}
}

func TestManagerEnabled(t *testing.T) {
	t.Parallel()

	store := &countingStore{}
	mgr := NewManager(store, true)

	if _, ok, _ := mgr.Fetch("k"); ok {
		t.Fatal("Fetch() hit on an empty store")
	}
	if err := mgr.Persist("k", "/src", sampleResult()); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	res, ok, err := mgr.Fetch("k")
	if err != nil || !ok {
		t.Fatalf("Fetch() = (ok=%v, err=%v) after Persist()", ok, err)
	}
	if len(res.Groups) != 1 {
		t.Errorf("Fetch() groups = %d, want 1", len(res.Groups))
	}
	if store.sets != 1 {
		t.Errorf("sets = %d, want 1", store.sets)
	}
}
