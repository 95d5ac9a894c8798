package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config is the full ragmark configuration. Values come from defaults,
// the config file, RAGMARK_* environment variables, and CLI flags, in
// ascending priority.
type Config struct {
	Dataset     DatasetConfig     `yaml:"dataset" json:"dataset"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" json:"rate_limit"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// DatasetConfig controls how combined and parallel-file inputs are parsed.
type DatasetConfig struct {
	GeneratedColumn string `yaml:"generated_column" json:"generated_column"` // CSV column with generated answers
	ReferenceColumn string `yaml:"reference_column" json:"reference_column"` // CSV column with joined references
	ReferenceSep    string `yaml:"reference_sep" json:"reference_sep"`       // delimiter inside a CSV reference cell
	LineSep         string `yaml:"line_sep" json:"line_sep"`                 // delimiter inside a reference-file line
}

// ConcurrencyConfig sizes the scoring and generation worker pools.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// LLMConfig configures the answer-generation provider.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // environment only, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// CacheConfig configures the generated-answer cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// RateLimitConfig throttles LLM API calls.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig controls report rendering and progress output.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			GeneratedColumn: "generated_answer",
			ReferenceColumn: "reference_answers",
			ReferenceSep:    "[SEP]",
			LineSep:         ";",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 256,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   7 * 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}

// defaultCacheDir places the answer cache under the user's home
// directory, falling back to the system temp dir.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ragmark-cache")
	}
	return filepath.Join(home, ".ragmark", "cache")
}
