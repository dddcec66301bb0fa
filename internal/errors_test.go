package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")

	withLine := &LoadError{Path: "cases.jsonl", Line: 3, Err: cause}
	if got := withLine.Error(); !strings.Contains(got, "line 3") || !strings.Contains(got, "cases.jsonl") {
		t.Errorf("Error() = %q, want line and path included", got)
	}
	if !errors.Is(withLine, cause) {
		t.Error("errors.Is() = false, want LoadError to unwrap to its cause")
	}

	fileLevel := &LoadError{Path: "cases.jsonl", Err: cause}
	if got := fileLevel.Error(); strings.Contains(got, "line") {
		t.Errorf("Error() = %q, want no line marker for file-level failure", got)
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &StorageError{Op: "write", Path: "annotations_alice.jsonl", Err: cause}

	want := "storage error: write annotations_alice.jsonl: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want StorageError to unwrap to its cause")
	}
}

func TestTutorialError(t *testing.T) {
	cause := errors.New("invalid character")
	err := &TutorialError{Path: "tutorial.json", Err: cause}

	if got := err.Error(); !strings.Contains(got, "tutorial error") || !strings.Contains(got, "tutorial.json") {
		t.Errorf("Error() = %q, want tutorial error with path", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want TutorialError to unwrap to its cause")
	}
}

func TestExportError(t *testing.T) {
	cause := errors.New("disk full")
	err := &ExportError{Format: "csv", Path: "annotations_alice.csv", Err: cause}

	want := "export error [csv] annotations_alice.csv: disk full"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want ExportError to unwrap to its cause")
	}
}
