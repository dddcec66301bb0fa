package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iksnae/power-annotate/internal"
)

// FileStore keeps one line-delimited JSON file per annotator under a root
// directory. Every upsert rewrites the annotator's file through a temp file
// and rename, so readers never observe a half-written file
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore opens a file store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &internal.StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the annotation file path for the annotator
func (s *FileStore) Path(annotator string) string {
	return filepath.Join(s.dir, "annotations_"+internal.SanitizeAnnotator(annotator)+".jsonl")
}

// List returns the annotator's records keyed by case id
func (s *FileStore) List(annotator string) (map[string]*internal.AnnotationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords(annotator)
	if err != nil {
		return nil, err
	}
	byCase := make(map[string]*internal.AnnotationRecord, len(records))
	for _, r := range records {
		byCase[r.CaseID] = r
	}
	return byCase, nil
}

// Upsert inserts or replaces the record in its annotator's file
func (s *FileStore) Upsert(record *internal.AnnotationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords(record.Annotator)
	if err != nil {
		return err
	}

	replaced := false
	for i, r := range records {
		if r.CaseID == record.CaseID {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return s.writeRecords(record.Annotator, records)
}

// Count returns how many cases the annotator has annotated
func (s *FileStore) Count(annotator string) (int, error) {
	byCase, err := s.List(annotator)
	if err != nil {
		return 0, err
	}
	return len(byCase), nil
}

// Close is a no-op, the store holds no open handles between calls
func (s *FileStore) Close() error {
	return nil
}

// readRecords loads the annotator's file in line order. A missing file
// means no records yet
func (s *FileStore) readRecords(annotator string) ([]*internal.AnnotationRecord, error) {
	path := s.Path(annotator)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &internal.StorageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var records []*internal.AnnotationRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec internal.AnnotationRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, &internal.StorageError{Op: "decode", Path: path, Err: fmt.Errorf("line %d: %w", lineNo, err)}
		}
		records = append(records, &rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, &internal.StorageError{Op: "read", Path: path, Err: err}
	}
	return records, nil
}

// writeRecords rewrites the annotator's file atomically: encode to a temp
// file in the same directory, fsync, then rename over the target
func (s *FileStore) writeRecords(annotator string, records []*internal.AnnotationRecord) error {
	path := s.Path(annotator)

	tmp, err := os.CreateTemp(s.dir, ".annotations-*.tmp")
	if err != nil {
		return &internal.StorageError{Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmpPath != "" {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	enc := json.NewEncoder(tmp)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return &internal.StorageError{Op: "encode", Path: path, Err: err}
		}
	}
	if err := tmp.Sync(); err != nil {
		return &internal.StorageError{Op: "sync", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &internal.StorageError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return &internal.StorageError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &internal.StorageError{Op: "rename", Path: path, Err: err}
	}
	tmpPath = ""
	return nil
}
