package cmd

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/iksnae/power-annotate/internal/store"
	"github.com/iksnae/power-annotate/testutil"
)

func TestAnnotateCommand_SavesRecord(t *testing.T) {
	dir, flags := testEnv(t)

	args := append([]string{"annotate",
		"--case", "case_custom01",
		"--winner", "Dana",
		"--tags", "ROLE,STATUS",
	}, flags...)
	if err := executeCommand(args...); err != nil {
		t.Fatalf("annotate error = %v", err)
	}

	st, err := store.Open(filepath.Join(dir, "annotations"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer st.Close()

	done, err := st.List("alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	rec, ok := done["case_custom01"]
	if !ok {
		t.Fatal("annotate did not store a record for case_custom01")
	}
	if rec.Winner != "Dana" {
		t.Errorf("Winner = %q, want Dana", rec.Winner)
	}
	if !reflect.DeepEqual(rec.PowerSources, []string{"ROLE", "STATUS"}) {
		t.Errorf("PowerSources = %v, want [ROLE STATUS]", rec.PowerSources)
	}
	if rec.MetaSnapshot.RelationshipType == nil || *rec.MetaSnapshot.RelationshipType != "Boss-Employee" {
		t.Errorf("MetaSnapshot.RelationshipType = %v, want Boss-Employee", rec.MetaSnapshot.RelationshipType)
	}
}

func TestAnnotateCommand_ReplacesOnRepeat(t *testing.T) {
	dir, flags := testEnv(t)

	first := append([]string{"annotate",
		"--case", "case_custom01",
		"--winner", "Dana",
		"--tags", "ROLE",
	}, flags...)
	if err := executeCommand(first...); err != nil {
		t.Fatalf("first annotate error = %v", err)
	}

	second := append([]string{"annotate",
		"--case", "case_custom01",
		"--winner", "Eli",
		"--tags", "COERCION",
	}, flags...)
	if err := executeCommand(second...); err != nil {
		t.Fatalf("second annotate error = %v", err)
	}

	st, err := store.Open(filepath.Join(dir, "annotations"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer st.Close()

	count, err := st.Count("alice")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d after re-annotation, want 1", count)
	}

	done, err := st.List("alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if rec := done["case_custom01"]; rec.Winner != "Eli" {
		t.Errorf("Winner = %q after re-annotation, want Eli", rec.Winner)
	}
}

func TestAnnotateCommand_UnknownTag(t *testing.T) {
	_, flags := testEnv(t)

	args := append([]string{"annotate",
		"--case", "case_custom01",
		"--winner", "Dana",
		"--tags", "CHARISMA",
	}, flags...)
	err := executeCommand(args...)
	if err == nil {
		t.Fatal("annotate error = nil for unknown tag, want error")
	}
	if !strings.Contains(err.Error(), "unknown power source tag") {
		t.Errorf("annotate error = %v, want unknown tag message", err)
	}
}

func TestAnnotateCommand_UnknownCase(t *testing.T) {
	_, flags := testEnv(t)

	args := append([]string{"annotate",
		"--case", "case_missing",
		"--winner", "Dana",
		"--tags", "ROLE",
	}, flags...)
	err := executeCommand(args...)
	if err == nil {
		t.Fatal("annotate error = nil for unknown case, want error")
	}
	if !strings.Contains(err.Error(), "case not found") {
		t.Errorf("annotate error = %v, want case not found message", err)
	}
}

func TestAnnotateCommand_OffListWinnerStored(t *testing.T) {
	dir, flags := testEnv(t)

	// An off-list winner is stored as given, only a warning is printed
	args := append([]string{"annotate",
		"--case", "case_custom01",
		"--winner", "Zed",
		"--tags", "ROLE",
	}, flags...)
	if err := executeCommand(args...); err != nil {
		t.Fatalf("annotate error = %v", err)
	}

	st, err := store.Open(filepath.Join(dir, "annotations"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer st.Close()

	done, err := st.List("alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if rec := done["case_custom01"]; rec == nil || rec.Winner != "Zed" {
		t.Errorf("stored record = %+v, want winner Zed", rec)
	}
}

func TestAnnotateCommand_SQLiteTarget(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	data := testutil.WriteCasesFixture(t, dir)

	dbPath := filepath.Join(dir, "annotations.db")
	args := []string{"annotate",
		"--case", "case_custom01",
		"--winner", "Dana",
		"--tags", "ROLE",
		"--no-cache",
		"--data", data,
		"--output", dbPath,
		"--annotator", "alice",
	}
	if err := executeCommand(args...); err != nil {
		t.Fatalf("annotate error = %v", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer st.Close()

	done, err := st.List("alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if _, ok := done["case_custom01"]; !ok {
		t.Error("annotate did not store a record in the sqlite database")
	}
}
