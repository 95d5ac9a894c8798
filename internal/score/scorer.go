package score

import (
	"context"

	"github.com/pkarpov/ragmark/internal/model"
	"github.com/pkarpov/ragmark/internal/text"
	"github.com/pkarpov/ragmark/internal/worker"
)

// Scorer computes Exact Match, token-level F1, and Answer Recall for a
// batch of (gold answers, generated answer) pairs, following SQuAD-style
// methodology extended to multi-reference recall.
type Scorer struct {
	rules   *text.Rules
	workers int
}

// NewScorer creates a scorer using the given normalization rules and
// worker count for the overlap fan-out.
func NewScorer(rules *text.Rules, workers int) *Scorer {
	if workers <= 0 {
		workers = 1
	}
	return &Scorer{
		rules:   rules,
		workers: workers,
	}
}

// Evaluate scores a batch and returns the aggregate metrics with their
// component values. Exact Match runs sequentially (it is cheap); the
// token-overlap computation is fanned out across the worker pool, one
// pair per job. The worker count never changes the result: partial
// (recall, F1) tuples are combined by commutative summation after the
// join barrier.
func (s *Scorer) Evaluate(batch model.Batch) (model.Metrics, model.Breakdown, error) {
	if err := batch.Validate(); err != nil {
		return model.Metrics{}, model.Breakdown{}, err
	}

	emCount := 0
	for _, pair := range batch {
		if s.exactMatch(pair) {
			emCount++
		}
	}

	pool := worker.NewPoolForN(s.workers, len(batch))
	pool.Start()
	for _, pair := range batch {
		pool.Submit(&overlapJob{pair: pair, scorer: s})
	}
	results := pool.Wait()

	var recallSum, f1Sum float64
	for _, r := range results {
		res := r.(*overlapResult)
		recallSum += res.recall
		f1Sum += res.f1
	}

	n := float64(len(batch))
	metrics := model.Metrics{
		ExactMatch:   100 * float64(emCount) / n,
		F1:           100 * f1Sum / n,
		AnswerRecall: 100 * recallSum / n,
	}
	breakdown := model.Breakdown{
		Pairs:        len(batch),
		ExactMatches: emCount,
		RecallSum:    recallSum,
		F1Sum:        f1Sum,
	}
	return metrics, breakdown, nil
}

// exactMatch reports whether the generated answer normalizes identically
// to at least one gold reference. Two answers that both normalize to the
// empty string count as a match.
func (s *Scorer) exactMatch(pair model.Pair) bool {
	generated := s.rules.Normalize(pair.Generated)
	for _, gold := range pair.Gold {
		if generated == s.rules.Normalize(gold) {
			return true
		}
	}
	return false
}

// overlap computes the pair's token-overlap recall and F1, max-pooled
// over the gold references. A reference sharing no token with the
// prediction is skipped outright rather than entered into the max as a
// zero; when every reference is skipped the pair keeps the initial 0 for
// both values. The skip also covers an empty generated answer (its bag
// overlaps nothing), so the precision division is never reached with a
// zero denominator.
func (s *Scorer) overlap(pair model.Pair) (recall, f1 float64) {
	pred := s.rules.Tokenize(pair.Generated)
	predTotal := text.BagSize(pred)

	for _, gold := range pair.Gold {
		goldBag := s.rules.Tokenize(gold)
		numSame := text.BagOverlap(pred, goldBag)
		if numSame == 0 {
			continue
		}

		precision := float64(numSame) / float64(predTotal)
		refRecall := float64(numSame) / float64(text.BagSize(goldBag))
		refF1 := 2 * precision * refRecall / (precision + refRecall)

		if refRecall > recall {
			recall = refRecall
		}
		if refF1 > f1 {
			f1 = refF1
		}
	}
	return recall, f1
}

// overlapJob scores one pair's token overlap on the pool.
type overlapJob struct {
	pair   model.Pair
	scorer *Scorer
}

// Execute computes the pair's recall and F1. The computation is a pure
// function of the pair; jobs share no state.
func (j *overlapJob) Execute(ctx context.Context) worker.Result {
	recall, f1 := j.scorer.overlap(j.pair)
	return &overlapResult{
		recall: recall,
		f1:     f1,
	}
}

// overlapResult is one pair's partial contribution to the batch sums.
type overlapResult struct {
	recall float64
	f1     float64
}

// GetError always returns nil: overlap scoring is pure arithmetic.
func (r *overlapResult) GetError() error {
	return nil
}
