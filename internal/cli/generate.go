package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkarpov/ragmark/internal/model"
	"github.com/pkarpov/ragmark/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	genQuestions   string
	genOutput      string
	genConcurrency int
	genTimeout     time.Duration
	genRPS         float64
	genBurst       int
	genNoCache     bool
	llmProvider    string
	llmModel       string
	llmBaseURL     string
	llmMaxTokens   int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate answers for a question file with an LLM provider",
	Long: `Generate batch-sends questions to an LLM provider and writes one
answer per line, aligned with the question file. The output feeds
directly into 'ragmark evaluate --answers'.

Questions are processed in parallel with a configurable worker count,
rate-limited per provider, and cached so reruns do not re-bill the API.

Example:
  ragmark generate --questions questions.txt --output answers.txt --llm-provider openai
  ragmark generate --questions questions.txt --llm-provider ollama --llm-model llama3.1
  ragmark generate --questions questions.txt --concurrency 4 --rps 1`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// I/O flags
	generateCmd.Flags().StringVar(&genQuestions, "questions", "", "questions file (one per line)")
	generateCmd.Flags().StringVar(&genOutput, "output", "answers.txt", "output answers path")
	_ = generateCmd.MarkFlagRequired("questions")

	// Concurrency flags
	generateCmd.Flags().IntVar(&genConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	generateCmd.Flags().Float64Var(&genRPS, "rps", 2, "provider requests per second")
	generateCmd.Flags().IntVar(&genBurst, "burst", 5, "provider request burst size")
	generateCmd.Flags().BoolVar(&genNoCache, "no-cache", false, "disable answer cache (force fresh generation)")

	// LLM flags
	generateCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	generateCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
	generateCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "custom API base URL")
	generateCmd.Flags().IntVar(&llmMaxTokens, "llm-max-tokens", 256, "max tokens per answer")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = genConcurrency
	cfg.Cache.Enabled = !genNoCache
	cfg.RateLimit.RequestsPerSecond = genRPS
	cfg.RateLimit.BurstSize = genBurst
	cfg.Output.Verbose = verbose
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.BaseURL = llmBaseURL
	cfg.LLM.MaxTokens = llmMaxTokens

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	generator, err := pipeline.NewGenerator(cfg)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Questions:   %s\n", genQuestions)
		fmt.Fprintf(os.Stderr, "Output:      %s\n", genOutput)
		fmt.Fprintf(os.Stderr, "Provider:    %s/%s\n", llmProvider, llmModel)
		fmt.Fprintf(os.Stderr, "Workers:     %d\n", genConcurrency)
		fmt.Fprintf(os.Stderr, "Cache:       %v\n", !genNoCache)
		fmt.Fprintln(os.Stderr)
	}

	n, err := generator.GenerateFile(ctx, genQuestions, genOutput)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote %d answers to %s\n", n, genOutput)
	return nil
}
