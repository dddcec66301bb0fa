package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/iksnae/power-annotate/internal"
)

const schema = `
CREATE TABLE IF NOT EXISTS annotations (
	case_id       TEXT NOT NULL,
	annotator     TEXT NOT NULL,
	timestamp     TEXT NOT NULL,
	winner        TEXT NOT NULL,
	power_sources TEXT NOT NULL,
	meta_snapshot TEXT NOT NULL,
	PRIMARY KEY (case_id, annotator)
);
CREATE INDEX IF NOT EXISTS idx_annotations_annotator ON annotations(annotator);
`

// SQLiteStore keeps all annotators' records in one SQLite table keyed by
// (case_id, annotator). Upserts ride on the table's primary key, so the
// replace-not-duplicate guarantee holds even across processes
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens the SQLite database at path, creating it and the
// annotations schema if needed
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &internal.StorageError{Op: "open", Path: path, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &internal.StorageError{Op: "open", Path: path, Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &internal.StorageError{Op: "migrate", Path: path, Err: err}
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// List returns the annotator's records keyed by case id
func (s *SQLiteStore) List(annotator string) (map[string]*internal.AnnotationRecord, error) {
	const q = `
SELECT case_id, annotator, timestamp, winner, power_sources, meta_snapshot
FROM annotations
WHERE annotator = ?`
	rows, err := s.db.Query(q, annotator)
	if err != nil {
		return nil, &internal.StorageError{Op: "query", Path: s.path, Err: err}
	}
	defer rows.Close()

	byCase := make(map[string]*internal.AnnotationRecord)
	for rows.Next() {
		var rec internal.AnnotationRecord
		var sources, snapshot string
		if err := rows.Scan(&rec.CaseID, &rec.Annotator, &rec.Timestamp, &rec.Winner, &sources, &snapshot); err != nil {
			return nil, &internal.StorageError{Op: "scan", Path: s.path, Err: err}
		}
		if err := json.Unmarshal([]byte(sources), &rec.PowerSources); err != nil {
			return nil, &internal.StorageError{Op: "decode", Path: s.path, Err: fmt.Errorf("power_sources for %s: %w", rec.CaseID, err)}
		}
		if err := json.Unmarshal([]byte(snapshot), &rec.MetaSnapshot); err != nil {
			return nil, &internal.StorageError{Op: "decode", Path: s.path, Err: fmt.Errorf("meta_snapshot for %s: %w", rec.CaseID, err)}
		}
		byCase[rec.CaseID] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, &internal.StorageError{Op: "query", Path: s.path, Err: err}
	}
	return byCase, nil
}

// Upsert inserts or replaces the record for its (case id, annotator) key
func (s *SQLiteStore) Upsert(record *internal.AnnotationRecord) error {
	sources, err := json.Marshal(record.PowerSources)
	if err != nil {
		return &internal.StorageError{Op: "encode", Path: s.path, Err: err}
	}
	snapshot, err := json.Marshal(record.MetaSnapshot)
	if err != nil {
		return &internal.StorageError{Op: "encode", Path: s.path, Err: err}
	}

	const q = `
INSERT INTO annotations (case_id, annotator, timestamp, winner, power_sources, meta_snapshot)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(case_id, annotator) DO UPDATE SET
	timestamp = excluded.timestamp,
	winner = excluded.winner,
	power_sources = excluded.power_sources,
	meta_snapshot = excluded.meta_snapshot`
	if _, err := s.db.Exec(q, record.CaseID, record.Annotator, record.Timestamp, record.Winner, string(sources), string(snapshot)); err != nil {
		return &internal.StorageError{Op: "upsert", Path: s.path, Err: err}
	}
	return nil
}

// Count returns how many cases the annotator has annotated
func (s *SQLiteStore) Count(annotator string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM annotations WHERE annotator = ?`, annotator).Scan(&n)
	if err != nil {
		return 0, &internal.StorageError{Op: "count", Path: s.path, Err: err}
	}
	return n, nil
}

// Close closes the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
