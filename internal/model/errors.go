package model

import (
	"errors"
	"fmt"
)

// Input shape failures abort scoring before any metric is computed; a
// skewed denominator is worse than no report.
var (
	// ErrEmptyBatch indicates an input with zero scoring pairs.
	ErrEmptyBatch = errors.New("evaluation batch is empty")

	// ErrShapeMismatch indicates gold and generated sequences of
	// different lengths.
	ErrShapeMismatch = errors.New("gold and generated answer counts differ")

	// ErrMissingColumn indicates a required column is absent from a
	// combined tabular input.
	ErrMissingColumn = errors.New("required column not found")

	// ErrNoReferences indicates a row whose reference list parsed to
	// zero gold answers.
	ErrNoReferences = errors.New("row has no reference answers")
)

// RowError attaches a zero-based row index to a malformed-row error.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
