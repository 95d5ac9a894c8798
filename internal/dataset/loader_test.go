package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkarpov/ragmark/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "answers.csv",
		"question,generated_answer,reference_answers\n"+
			"Where did it start?,Kansas,Kansas[SEP]Kansas City\n"+
			"How long?,3 year,3 years\n"+
			"\"When?\",1897,\"1897\"\n")

	batch, err := LoadCSV(path, "generated_answer", "reference_answers", "[SEP]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(batch))
	}
	if batch[0].Generated != "Kansas" {
		t.Errorf("pair 0 generated = %q", batch[0].Generated)
	}
	if len(batch[0].Gold) != 2 || batch[0].Gold[1] != "Kansas City" {
		t.Errorf("pair 0 gold = %v, want [Kansas, Kansas City]", batch[0].Gold)
	}
	if len(batch[1].Gold) != 1 || batch[1].Gold[0] != "3 years" {
		t.Errorf("pair 1 gold = %v", batch[1].Gold)
	}
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	path := writeFile(t, "answers.csv",
		"question,generated_answer\nWhere?,Kansas\n")

	_, err := LoadCSV(path, "generated_answer", "reference_answers", "[SEP]")
	if !errors.Is(err, model.ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadCSV_EmptyReferenceCell(t *testing.T) {
	path := writeFile(t, "answers.csv",
		"generated_answer,reference_answers\nKansas,Kansas\nSome,\n")

	_, err := LoadCSV(path, "generated_answer", "reference_answers", "[SEP]")
	if !errors.Is(err, model.ErrNoReferences) {
		t.Errorf("expected ErrNoReferences, got %v", err)
	}

	var rowErr *model.RowError
	if !errors.As(err, &rowErr) || rowErr.Row != 1 {
		t.Errorf("expected RowError naming row 1, got %v", err)
	}
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	path := writeFile(t, "answers.csv", "generated_answer,reference_answers\n")

	_, err := LoadCSV(path, "generated_answer", "reference_answers", "[SEP]")
	if !errors.Is(err, model.ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := LoadCSV("/nonexistent/answers.csv", "g", "r", "[SEP]"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadTextPair(t *testing.T) {
	gen := writeFile(t, "generated.txt", "Kansas\n\n1897\n")
	ref := writeFile(t, "references.txt", "Kansas; Kansas City\nthree rivers\n1897\n")

	batch, err := LoadTextPair(gen, ref, ";")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(batch))
	}

	// Blank generated lines survive as empty answers.
	if batch[1].Generated != "" {
		t.Errorf("pair 1 generated = %q, want empty", batch[1].Generated)
	}
	if len(batch[0].Gold) != 2 || batch[0].Gold[1] != "Kansas City" {
		t.Errorf("pair 0 gold = %v, want trimmed [Kansas, Kansas City]", batch[0].Gold)
	}
}

func TestLoadTextPair_ShapeMismatch(t *testing.T) {
	gen := writeFile(t, "generated.txt", "Kansas\n1897\n")
	ref := writeFile(t, "references.txt", "Kansas\n")

	_, err := LoadTextPair(gen, ref, ";")
	if !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestLoadTextPair_Empty(t *testing.T) {
	gen := writeFile(t, "generated.txt", "")
	ref := writeFile(t, "references.txt", "")

	_, err := LoadTextPair(gen, ref, ";")
	if !errors.Is(err, model.ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}
}
