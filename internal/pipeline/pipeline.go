package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkarpov/ragmark/internal/cache"
	"github.com/pkarpov/ragmark/internal/dataset"
	"github.com/pkarpov/ragmark/internal/llm"
	"github.com/pkarpov/ragmark/internal/model"
	"github.com/pkarpov/ragmark/internal/score"
	"github.com/pkarpov/ragmark/internal/text"
	"github.com/pkarpov/ragmark/internal/worker"
)

// Evaluator orchestrates the scoring half: load a batch, score it,
// assemble the report.
type Evaluator struct {
	scorer   *score.Scorer
	renderer *Renderer
	config   *model.Config
}

// NewEvaluator creates an evaluator from the given configuration.
func NewEvaluator(cfg *model.Config) *Evaluator {
	return &Evaluator{
		scorer:   score.NewScorer(text.DefaultRules(), cfg.Concurrency.Workers),
		renderer: NewRenderer(),
		config:   cfg,
	}
}

// EvaluateCSV scores a combined CSV input.
func (e *Evaluator) EvaluateCSV(path string) (*model.Report, error) {
	ds := e.config.Dataset
	batch, err := dataset.LoadCSV(path, ds.GeneratedColumn, ds.ReferenceColumn, ds.ReferenceSep)
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	return e.evaluate(batch, path)
}

// EvaluateTextPair scores two parallel answer files.
func (e *Evaluator) EvaluateTextPair(generatedPath, referencePath string) (*model.Report, error) {
	batch, err := dataset.LoadTextPair(generatedPath, referencePath, e.config.Dataset.LineSep)
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	return e.evaluate(batch, generatedPath+","+referencePath)
}

func (e *Evaluator) evaluate(batch model.Batch, inputLabel string) (*model.Report, error) {
	metrics, breakdown, err := e.scorer.Evaluate(batch)
	if err != nil {
		return nil, fmt.Errorf("score batch: %w", err)
	}

	return &model.Report{
		Metrics:     metrics,
		Breakdown:   breakdown,
		InputPath:   inputLabel,
		Workers:     e.config.Concurrency.Workers,
		EvaluatedAt: time.Now().UTC(),
	}, nil
}

// RenderReport writes the JSON report and prints the metric summary.
func (e *Evaluator) RenderReport(report *model.Report, jsonPath string, verbose bool) error {
	if jsonPath != "" {
		if err := e.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote report: %s\n", jsonPath)
		}
	}

	e.renderer.RenderSummary(report)
	return nil
}

// Generator orchestrates the generation half: question in, cached or
// freshly generated answer out. It implements worker.Generator so a
// BatchGenerator can fan it out.
type Generator struct {
	provider llm.Provider
	cache    cache.Cache // nil when caching is disabled
	limiter  *worker.Limiter
	config   *model.Config
}

// NewGenerator creates a generator from the given configuration. The
// LLM provider must be configured.
func NewGenerator(cfg *model.Config) (*Generator, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("no LLM provider configured (use --llm-provider or the config file)")
	}

	var answerCache cache.Cache
	if cfg.Cache.Enabled {
		answerCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Generator{
		provider: provider,
		cache:    answerCache,
		limiter:  worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize),
		config:   cfg,
	}, nil
}

// Provider returns the underlying LLM provider.
func (g *Generator) Provider() llm.Provider {
	return g.provider
}

// GenerateAnswer produces one answer, consulting the cache before the
// provider. Only fresh provider calls pass through the rate limiter.
func (g *Generator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	key := cache.AnswerKey(g.provider.Name(), g.config.LLM.Model, question)

	if g.cache != nil {
		if val, found := g.cache.Get(key); found {
			return string(val), nil
		}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	resp, err := g.provider.Answer(ctx, llm.AnswerRequest{Question: question})
	if err != nil {
		return "", err
	}

	if g.cache != nil {
		_ = g.cache.Set(key, []byte(resp.Answer), 0)
	}
	return resp.Answer, nil
}

// GenerateFile answers every question in questionsPath and writes the
// answers to outPath, one per line, aligned with the question order. Any
// failed question fails the run: a partially answered file would shift
// alignment and silently corrupt downstream scoring.
func (g *Generator) GenerateFile(ctx context.Context, questionsPath, outPath string) (int, error) {
	batch := worker.NewBatchGenerator(g, g.config.Concurrency.Workers)

	results, err := batch.ProcessFile(ctx, questionsPath)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("%s: no questions found", questionsPath)
	}

	answers := make([]string, len(results))
	for _, r := range results {
		if r.Error != nil {
			return 0, fmt.Errorf("question %d (%q): %w", r.Index, r.Question, r.Error)
		}
		// Newlines inside an answer would break the one-answer-per-line
		// contract of the output file.
		answers[r.Index] = strings.ReplaceAll(r.Answer, "\n", " ")
	}

	out := strings.Join(answers, "\n") + "\n"
	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return 0, fmt.Errorf("write answers: %w", err)
	}
	return len(answers), nil
}
