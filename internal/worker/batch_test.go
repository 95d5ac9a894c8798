package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// reverseGenerator answers with the reversed question after a small,
// index-dependent delay so completion order differs from input order.
type reverseGenerator struct{}

func (g *reverseGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	delay := time.Duration(len(question)%3) * 5 * time.Millisecond
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	runes := []rune(question)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

type failingGenerator struct {
	failOn string
}

func (g *failingGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	if question == g.failOn {
		return "", fmt.Errorf("provider rejected question %q", question)
	}
	return "ok", nil
}

func TestBatchGenerator_PreservesOrder(t *testing.T) {
	questions := make([]string, 20)
	for i := range questions {
		questions[i] = fmt.Sprintf("question number %d?", i)
	}

	b := NewBatchGenerator(&reverseGenerator{}, 4)
	results := b.ProcessQuestions(context.Background(), questions)

	if len(results) != len(questions) {
		t.Fatalf("expected %d results, got %d", len(questions), len(results))
	}

	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if r.Question != questions[i] {
			t.Errorf("result %d paired with question %q, want %q", i, r.Question, questions[i])
		}
	}
}

func TestBatchGenerator_ErrorsSurfacePerQuestion(t *testing.T) {
	questions := []string{"first?", "bad?", "third?"}

	b := NewBatchGenerator(&failingGenerator{failOn: "bad?"}, 2)
	results := b.ProcessQuestions(context.Background(), questions)

	if results[0].Error != nil || results[2].Error != nil {
		t.Error("expected only the failing question to carry an error")
	}
	if results[1].Error == nil {
		t.Error("expected an error for the failing question")
	}
}

func TestBatchGenerator_EmptyInput(t *testing.T) {
	b := NewBatchGenerator(&reverseGenerator{}, 2)
	results := b.ProcessQuestions(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadQuestionsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.txt")

	content := strings.Join([]string{
		"# Pittsburgh question set",
		"When was Carnegie Mellon founded?",
		"",
		"What river forms at the Point?",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	questions, err := ReadQuestionsFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"When was Carnegie Mellon founded?",
		"What river forms at the Point?",
	}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(questions))
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Errorf("question %d = %q, want %q", i, questions[i], want[i])
		}
	}
}

func TestReadQuestionsFromFile_Missing(t *testing.T) {
	if _, err := ReadQuestionsFromFile("/nonexistent/questions.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
