package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/iksnae/power-annotate/internal"
)

func TestCSVExporter_Export(t *testing.T) {
	full := internal.CreateTestRecord("case_a", "alice")
	sparse := &internal.AnnotationRecord{
		CaseID:       "idx_0",
		Annotator:    "alice",
		Timestamp:    "2025-06-01T10:00:00Z",
		Winner:       "Tie",
		PowerSources: []string{},
		MetaSnapshot: internal.MetaSnapshot{Name1: "Speaker 1", Name2: "Speaker 2"},
	}

	var buf bytes.Buffer
	exporter := &CSVExporter{}
	if err := exporter.Export([]*internal.AnnotationRecord{full, sparse}, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Export() wrote %d rows, want header plus 2 records", len(rows))
	}

	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header = %v, want %v", rows[0], csvHeader)
	}

	wantFull := []string{
		"case_a", "alice", "2025-06-01T10:00:00Z", "Amy",
		"ROLE;STATUS", "Parent-Child", "parent", "child", "Amy", "Ben",
	}
	if !reflect.DeepEqual(rows[1], wantFull) {
		t.Errorf("rows[1] = %v, want %v", rows[1], wantFull)
	}

	wantSparse := []string{
		"idx_0", "alice", "2025-06-01T10:00:00Z", "Tie",
		"", "", "", "", "Speaker 1", "Speaker 2",
	}
	if !reflect.DeepEqual(rows[2], wantSparse) {
		t.Errorf("rows[2] = %v, want %v", rows[2], wantSparse)
	}
}

func TestCSVExporter_ExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	exporter := &CSVExporter{}

	if err := exporter.Export(nil, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Export() wrote %d rows for no records, want header only", len(rows))
	}
}
