package internal

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/iksnae/power-annotate/testutil"
)

func TestCacheManager_Paths(t *testing.T) {
	cm := NewCacheManager("/tmp/cache")

	if got := cm.IndexPath(); got != filepath.Join("/tmp/cache", "index.yaml") {
		t.Errorf("IndexPath() = %q, want index.yaml under the cache dir", got)
	}
	if got := cm.CasesPath(); got != filepath.Join("/tmp/cache", "cases.json") {
		t.Errorf("CasesPath() = %q, want cases.json under the cache dir", got)
	}
}

func TestCacheManager_RoundTrip(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	source := testutil.WriteCasesFixture(t, dir)
	cm := NewCacheManager(filepath.Join(dir, "cache"))

	cases, err := LoadCases(source)
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}
	if err := cm.SaveCases(source, cases); err != nil {
		t.Fatalf("SaveCases() error = %v", err)
	}

	if !cm.IsCacheValid(source) {
		t.Error("IsCacheValid() = false right after SaveCases(), want true")
	}

	cached, err := cm.LoadCachedCases()
	if err != nil {
		t.Fatalf("LoadCachedCases() error = %v", err)
	}
	if !reflect.DeepEqual(cached, cases) {
		t.Error("LoadCachedCases() differs from the saved case list")
	}
}

func TestCacheManager_InvalidWhenSourceChanges(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	source := testutil.WriteCasesFixture(t, dir)
	cm := NewCacheManager(filepath.Join(dir, "cache"))

	cases, err := LoadCases(source)
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}
	if err := cm.SaveCases(source, cases); err != nil {
		t.Fatalf("SaveCases() error = %v", err)
	}

	// Move the source's modification time so the index no longer matches
	newMod := time.Now().Add(2 * time.Hour)
	if err := os.Chtimes(source, newMod, newMod); err != nil {
		t.Fatalf("os.Chtimes() error = %v", err)
	}

	if cm.IsCacheValid(source) {
		t.Error("IsCacheValid() = true after source modification, want false")
	}
}

func TestCacheManager_InvalidForDifferentSource(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	source := testutil.WriteCasesFixture(t, dir)
	other := testutil.WriteFile(t, dir, "other.jsonl",
		`{"meta":{"name1":"Kim","name2":"Lee"},"raw":{"script":[]}}`+"\n")
	cm := NewCacheManager(filepath.Join(dir, "cache"))

	cases, err := LoadCases(source)
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}
	if err := cm.SaveCases(source, cases); err != nil {
		t.Fatalf("SaveCases() error = %v", err)
	}

	if cm.IsCacheValid(other) {
		t.Error("IsCacheValid() = true for a different source path, want false")
	}
}

func TestCacheManager_InvalidWhenEmpty(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	source := testutil.WriteCasesFixture(t, dir)
	cm := NewCacheManager(filepath.Join(dir, "cache"))

	if cm.IsCacheValid(source) {
		t.Error("IsCacheValid() = true for a fresh cache dir, want false")
	}
}

func TestCacheManager_Clear(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	source := testutil.WriteCasesFixture(t, dir)
	cm := NewCacheManager(filepath.Join(dir, "cache"))

	cases, err := LoadCases(source)
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}
	if err := cm.SaveCases(source, cases); err != nil {
		t.Fatalf("SaveCases() error = %v", err)
	}

	if err := cm.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if cm.IsCacheValid(source) {
		t.Error("IsCacheValid() = true after Clear(), want false")
	}
	if _, err := os.Stat(cm.IndexPath()); !os.IsNotExist(err) {
		t.Error("index file still exists after Clear()")
	}
}
