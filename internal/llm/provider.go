package llm

import "context"

// Provider defines the interface for answer-generation backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Answer generates a short answer for one question
	Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnswerRequest contains the input for one answer generation
type AnswerRequest struct {
	// Question is the natural-language question to answer
	Question string

	// Context is optional retrieved passage text to ground the answer.
	// It is passed through verbatim; retrieval itself happens upstream.
	Context string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnswerResponse contains the generated answer
type AnswerResponse struct {
	// Answer is the generated answer text
	Answer string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 256,
	}
}

// systemPrompt steers every provider toward short extractive answers;
// the scorer rewards token overlap, not prose.
const systemPrompt = `You are a question answering assistant for a document collection about Pittsburgh and Carnegie Mellon University. Answer with the shortest span that fully answers the question: a name, a date, a number, or a short phrase. Do not write full sentences. Do not explain. If the context does not contain the answer, give your best short guess.`

// BuildPrompt constructs the default few-shot QA prompt for one question
func BuildPrompt(question, context string) string {
	prompt := `Examples:
Question: When was Carnegie Mellon University founded?
Answer: 1900

Question: What are the three rivers of Pittsburgh?
Answer: Allegheny, Monongahela, Ohio

Question: Who is the mayor of Pittsburgh?
Answer: Ed Gainey

`
	if context != "" {
		prompt += "Context:\n" + context + "\n\n"
	}
	prompt += "Question: " + question + "\nAnswer:"
	return prompt
}
