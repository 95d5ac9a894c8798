package model

// AnswerSet is the ordered list of acceptable gold answers for one
// question. Well-formed input always has at least one element.
type AnswerSet []string

// Pair couples one question's gold answers with the answer the QA system
// generated for it. Pairs are index-aligned within a Batch; a generated
// answer is only ever scored against its own AnswerSet.
type Pair struct {
	Gold      AnswerSet
	Generated string
}

// Batch is an ordered sequence of scoring pairs. Ordering carries no
// meaning beyond alignment; every pair is scored independently.
type Batch []Pair

// Validate checks the batch shape invariants: at least one pair, and a
// non-empty AnswerSet on every pair.
func (b Batch) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBatch
	}
	for i, p := range b {
		if len(p.Gold) == 0 {
			return &RowError{Row: i, Err: ErrNoReferences}
		}
	}
	return nil
}
