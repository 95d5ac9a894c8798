package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Generator produces one answer for one question.
type Generator interface {
	GenerateAnswer(ctx context.Context, question string) (string, error)
}

// AnswerJob asks the generator for one question's answer. Index is the
// question's position in the input file so output stays aligned no
// matter which worker finishes first.
type AnswerJob struct {
	Index     int
	Question  string
	Generator Generator
}

// Execute runs the generation for this job's question.
func (j *AnswerJob) Execute(ctx context.Context) Result {
	answer, err := j.Generator.GenerateAnswer(ctx, j.Question)
	return &AnswerResult{
		Index:    j.Index,
		Question: j.Question,
		Answer:   answer,
		Error:    err,
	}
}

// AnswerResult is the outcome of one generation job.
type AnswerResult struct {
	Index    int
	Question string
	Answer   string
	Error    error
}

// GetError returns the error from the generation, if any.
func (r *AnswerResult) GetError() error {
	return r.Error
}

// BatchGenerator fans a question list out over a worker pool.
type BatchGenerator struct {
	generator   Generator
	concurrency int
}

// NewBatchGenerator creates a batch generator with the given concurrency.
func NewBatchGenerator(generator Generator, concurrency int) *BatchGenerator {
	return &BatchGenerator{
		generator:   generator,
		concurrency: concurrency,
	}
}

// ProcessQuestions generates answers for all questions concurrently and
// returns results in question order.
func (b *BatchGenerator) ProcessQuestions(ctx context.Context, questions []string) []*AnswerResult {
	if len(questions) == 0 {
		return []*AnswerResult{}
	}

	pool := NewPoolForN(b.concurrency, len(questions))
	pool.Start()

	for i, q := range questions {
		pool.Submit(&AnswerJob{
			Index:     i,
			Question:  q,
			Generator: b.generator,
		})
	}

	results := pool.Wait()

	answers := make([]*AnswerResult, len(results))
	for i, result := range results {
		answers[i] = result.(*AnswerResult)
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].Index < answers[j].Index })

	return answers
}

// ProcessFile reads questions from a file and generates answers for them.
func (b *BatchGenerator) ProcessFile(ctx context.Context, filePath string) ([]*AnswerResult, error) {
	questions, err := ReadQuestionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return b.ProcessQuestions(ctx, questions), nil
}

// ReadQuestionsFromFile reads questions from a file, one per line,
// skipping blank lines and # comments.
func ReadQuestionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var questions []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		questions = append(questions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return questions, nil
}
