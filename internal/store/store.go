// Package store persists annotation records keyed by (annotator, case id).
//
// Two backends satisfy the same contract: a per-annotator JSONL file tree
// for local use, and a shared SQLite table for deployments where several
// reviewers write into one database file.
package store

import (
	"strings"

	"github.com/iksnae/power-annotate/internal"
)

// Store persists annotation records partitioned by annotator. At most one
// record exists per (annotator, case id) pair; Upsert replaces whole
// records, never merges fields
type Store interface {
	// List returns every record stored for the annotator, keyed by case
	// id. An annotator with no records yields an empty map
	List(annotator string) (map[string]*internal.AnnotationRecord, error)

	// Upsert writes the record as the current value for its (annotator,
	// case id) key, inserting or fully replacing
	Upsert(record *internal.AnnotationRecord) error

	// Count returns the number of distinct case ids the annotator has
	// annotated
	Count(annotator string) (int, error)

	// Close releases the backing resource
	Close() error
}

// Open selects a backend from the target: a "sqlite:" prefix or a path
// ending in .db or .sqlite opens a SQLite store, anything else is used as
// a directory of per-annotator files
func Open(target string) (Store, error) {
	if strings.HasPrefix(target, "sqlite:") {
		return NewSQLiteStore(strings.TrimPrefix(target, "sqlite:"))
	}
	if strings.HasSuffix(target, ".db") || strings.HasSuffix(target, ".sqlite") {
		return NewSQLiteStore(target)
	}
	return NewFileStore(target)
}
