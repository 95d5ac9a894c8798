package model

import "time"

// Metrics is the scoring record persisted for a batch. Field names match
// the report format consumed downstream; each value is a percentage in
// [0, 100].
type Metrics struct {
	ExactMatch   float64 `json:"Exact Match"`
	F1           float64 `json:"F1 Score"`
	AnswerRecall float64 `json:"Answer Recall"`
}

// Breakdown carries the component values behind the percentages so a
// report is auditable without rerunning the batch.
type Breakdown struct {
	Pairs        int     `json:"pairs"`         // N
	ExactMatches int     `json:"exact_matches"` // pairs whose normalized answer matched a reference
	RecallSum    float64 `json:"recall_sum"`    // sum of per-pair max-pooled recalls
	F1Sum        float64 `json:"f1_sum"`        // sum of per-pair max-pooled F1s
}

// Report is the complete evaluation output for one batch. Immutable once
// assembled; serialized as the persisted JSON report.
type Report struct {
	Metrics     Metrics   `json:"metrics"`
	Breakdown   Breakdown `json:"breakdown"`
	InputPath   string    `json:"input_path,omitempty"`
	Workers     int       `json:"workers,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}
