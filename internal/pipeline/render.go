package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkarpov/ragmark/internal/model"
)

// Renderer writes evaluation reports
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON to the given path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints the three metrics to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("Exact Match:   %6.2f\n", report.Metrics.ExactMatch)
	fmt.Printf("F1 Score:      %6.2f\n", report.Metrics.F1)
	fmt.Printf("Answer Recall: %6.2f\n", report.Metrics.AnswerRecall)
	fmt.Printf("Pairs scored:  %d (%d exact)\n", report.Breakdown.Pairs, report.Breakdown.ExactMatches)
}
