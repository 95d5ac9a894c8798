package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkarpov/ragmark/internal/model"
	"github.com/pkarpov/ragmark/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	evalInput   string
	evalAnswers string
	evalRefs    string
	evalOutput  string
	evalWorkers int
	evalGenCol  string
	evalRefCol  string
	evalRefSep  string
	evalLineSep string
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score generated answers against gold references",
	Long: `Evaluate scores a batch of generated answers against gold reference
answers and writes a JSON report with three metrics:

- Exact Match:   percent of answers that normalize identically to a reference
- F1 Score:      token-overlap F1, max-pooled over references
- Answer Recall: token-overlap recall, max-pooled over references

Input is either a combined CSV (--input) with generated/reference
columns, or two parallel text files (--answers / --refs) with one
answer per line.

Example:
  ragmark evaluate --input results.csv --output report.json
  ragmark evaluate --answers system_output.txt --refs reference_answers.txt
  ragmark evaluate --input results.csv --workers 8 --ref-sep "[SEP]"`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	// Input flags
	evaluateCmd.Flags().StringVar(&evalInput, "input", "", "combined CSV input path")
	evaluateCmd.Flags().StringVar(&evalAnswers, "answers", "", "generated answers file (one per line)")
	evaluateCmd.Flags().StringVar(&evalRefs, "refs", "", "reference answers file (one per line)")
	evaluateCmd.Flags().StringVar(&evalOutput, "output", "report.json", "output JSON report path")

	// Scoring flags
	evaluateCmd.Flags().IntVar(&evalWorkers, "workers", runtime.NumCPU(), "number of scoring workers")
	evaluateCmd.Flags().StringVar(&evalGenCol, "generated-column", "generated_answer", "CSV column with generated answers")
	evaluateCmd.Flags().StringVar(&evalRefCol, "reference-column", "reference_answers", "CSV column with reference answers")
	evaluateCmd.Flags().StringVar(&evalRefSep, "ref-sep", "[SEP]", "delimiter between references in a CSV cell")
	evaluateCmd.Flags().StringVar(&evalLineSep, "line-sep", ";", "delimiter between references in a refs-file line")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	combined := evalInput != ""
	parallel := evalAnswers != "" || evalRefs != ""

	switch {
	case combined && parallel:
		return fmt.Errorf("--input and --answers/--refs are mutually exclusive")
	case !combined && !parallel:
		return fmt.Errorf("provide either --input or both --answers and --refs")
	case parallel && (evalAnswers == "" || evalRefs == ""):
		return fmt.Errorf("--answers and --refs must be given together")
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = evalWorkers
	cfg.Dataset.GeneratedColumn = evalGenCol
	cfg.Dataset.ReferenceColumn = evalRefCol
	cfg.Dataset.ReferenceSep = evalRefSep
	cfg.Dataset.LineSep = evalLineSep
	cfg.Output.Verbose = verbose

	if verbose {
		if combined {
			fmt.Fprintf(os.Stderr, "Input:   %s\n", evalInput)
		} else {
			fmt.Fprintf(os.Stderr, "Answers: %s\n", evalAnswers)
			fmt.Fprintf(os.Stderr, "Refs:    %s\n", evalRefs)
		}
		fmt.Fprintf(os.Stderr, "Workers: %d\n", evalWorkers)
		fmt.Fprintln(os.Stderr)
	}

	evaluator := pipeline.NewEvaluator(cfg)

	var (
		report *model.Report
		err    error
	)
	if combined {
		report, err = evaluator.EvaluateCSV(evalInput)
	} else {
		report, err = evaluator.EvaluateTextPair(evalAnswers, evalRefs)
	}
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	if err := evaluator.RenderReport(report, evalOutput, verbose); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
