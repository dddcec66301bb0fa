package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheIndex records what the cached case list was built from. The cache is
// valid only for the same source path and modification time
type CacheIndex struct {
	SourcePath string    `yaml:"source_path"`
	SourceMod  time.Time `yaml:"source_mod"`
	CaseCount  int       `yaml:"case_count"`
	CachedAt   time.Time `yaml:"cached_at"`
}

// CacheManager stores parsed case lists on disk so repeated runs skip the
// line-by-line parse of large sources. Loading is deterministic, so the
// cache only needs to track the source path and its modification time
type CacheManager struct {
	dir string
}

// NewCacheManager returns a cache manager rooted at dir
func NewCacheManager(dir string) *CacheManager {
	return &CacheManager{dir: dir}
}

// EnsureCacheDir creates the cache directory if needed
func (cm *CacheManager) EnsureCacheDir() error {
	if err := os.MkdirAll(cm.dir, 0755); err != nil {
		return &StorageError{Op: "mkdir", Path: cm.dir, Err: err}
	}
	return nil
}

// IndexPath returns the path of the cache index file
func (cm *CacheManager) IndexPath() string {
	return filepath.Join(cm.dir, "index.yaml")
}

// CasesPath returns the path of the cached case list
func (cm *CacheManager) CasesPath() string {
	return filepath.Join(cm.dir, "cases.json")
}

// IsCacheValid reports whether a cached case list exists for sourcePath and
// is current with respect to the source file's modification time
func (cm *CacheManager) IsCacheValid(sourcePath string) bool {
	idx, err := cm.readIndex()
	if err != nil {
		return false
	}
	src, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	if idx.SourcePath != sourcePath || !idx.SourceMod.Equal(src.ModTime()) {
		return false
	}
	_, err = os.Stat(cm.CasesPath())
	return err == nil
}

// LoadCachedCases reads the cached case list
func (cm *CacheManager) LoadCachedCases() ([]*Case, error) {
	data, err := os.ReadFile(cm.CasesPath())
	if err != nil {
		return nil, &StorageError{Op: "read", Path: cm.CasesPath(), Err: err}
	}
	var cases []*Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, &StorageError{Op: "decode", Path: cm.CasesPath(), Err: err}
	}
	return cases, nil
}

// SaveCases writes the case list and its index entry to the cache
func (cm *CacheManager) SaveCases(sourcePath string, cases []*Case) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return err
	}
	src, err := os.Stat(sourcePath)
	if err != nil {
		return &StorageError{Op: "stat", Path: sourcePath, Err: err}
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Path: cm.CasesPath(), Err: err}
	}
	if err := os.WriteFile(cm.CasesPath(), data, 0644); err != nil {
		return &StorageError{Op: "write", Path: cm.CasesPath(), Err: err}
	}

	idx := CacheIndex{
		SourcePath: sourcePath,
		SourceMod:  src.ModTime(),
		CaseCount:  len(cases),
		CachedAt:   time.Now().UTC(),
	}
	out, err := yaml.Marshal(&idx)
	if err != nil {
		return &StorageError{Op: "encode", Path: cm.IndexPath(), Err: err}
	}
	if err := os.WriteFile(cm.IndexPath(), out, 0644); err != nil {
		return &StorageError{Op: "write", Path: cm.IndexPath(), Err: err}
	}

	LogDebug("cached %d cases for %s", len(cases), sourcePath)
	return nil
}

// Clear removes all cached data
func (cm *CacheManager) Clear() error {
	if err := os.RemoveAll(cm.dir); err != nil {
		return &StorageError{Op: "clear", Path: cm.dir, Err: err}
	}
	return nil
}

// readIndex loads the cache index
func (cm *CacheManager) readIndex() (*CacheIndex, error) {
	data, err := os.ReadFile(cm.IndexPath())
	if err != nil {
		return nil, err
	}
	var idx CacheIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}
