// Package dataset loads scoring batches from the two supported input
// shapes: a combined CSV with generated/reference columns, or a pair of
// parallel text files with one answer per line. Malformed rows fail the
// whole load; silently dropping a row would skew the metric denominator.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pkarpov/ragmark/internal/model"
)

// LoadCSV reads a combined tabular input. The first record is the
// header; generatedCol holds one generated answer per row and
// referenceCol holds the gold answers joined by refSep (e.g. "[SEP]").
func LoadCSV(path, generatedCol, referenceCol, refSep string) (model.Batch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // validated per row below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}

	genIdx, refIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case generatedCol:
			genIdx = i
		case referenceCol:
			refIdx = i
		}
	}
	if genIdx < 0 {
		return nil, fmt.Errorf("%s: %w: %q", path, model.ErrMissingColumn, generatedCol)
	}
	if refIdx < 0 {
		return nil, fmt.Errorf("%s: %w: %q", path, model.ErrMissingColumn, referenceCol)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: read rows: %w", path, err)
	}

	batch := make(model.Batch, 0, len(records))
	for i, record := range records {
		if genIdx >= len(record) || refIdx >= len(record) {
			return nil, fmt.Errorf("%s: %w", path, &model.RowError{
				Row: i,
				Err: fmt.Errorf("%d fields, need column %d", len(record), max(genIdx, refIdx)+1),
			})
		}

		gold, err := splitReferences(record[refIdx], refSep)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, &model.RowError{Row: i, Err: err})
		}

		batch = append(batch, model.Pair{
			Gold:      gold,
			Generated: record[genIdx],
		})
	}

	if len(batch) == 0 {
		return nil, fmt.Errorf("%s: %w", path, model.ErrEmptyBatch)
	}
	return batch, nil
}

// LoadTextPair reads two parallel files: generatedPath holds one
// generated answer per line and referencePath one gold-answer list per
// line, with multiple references separated by refSep (e.g. ";"). Lines
// are index-aligned; a length mismatch fails the load.
func LoadTextPair(generatedPath, referencePath, refSep string) (model.Batch, error) {
	generated, err := readLines(generatedPath)
	if err != nil {
		return nil, err
	}
	references, err := readLines(referencePath)
	if err != nil {
		return nil, err
	}

	if len(generated) != len(references) {
		return nil, fmt.Errorf("%w: %s has %d lines, %s has %d",
			model.ErrShapeMismatch, generatedPath, len(generated), referencePath, len(references))
	}
	if len(generated) == 0 {
		return nil, fmt.Errorf("%s: %w", generatedPath, model.ErrEmptyBatch)
	}

	batch := make(model.Batch, 0, len(generated))
	for i := range generated {
		gold, err := splitReferences(references[i], refSep)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", referencePath, &model.RowError{Row: i, Err: err})
		}
		batch = append(batch, model.Pair{
			Gold:      gold,
			Generated: generated[i],
		})
	}
	return batch, nil
}

// splitReferences parses one reference cell or line into an AnswerSet.
// Individual references are trimmed of surrounding whitespace; an entry
// that is empty after trimming, or a cell with no references at all, is
// a malformed row.
func splitReferences(raw, sep string) (model.AnswerSet, error) {
	parts := strings.Split(raw, sep)

	set := make(model.AnswerSet, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		set = append(set, p)
	}
	if len(set) == 0 {
		return nil, model.ErrNoReferences
	}
	return set, nil
}

// readLines reads a file into one string per line, preserving empty
// lines: an empty generated answer is legitimate input, not noise.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: scan: %w", path, err)
	}
	return lines, nil
}
