package llm

import "context"

// Provider defines the interface for generation backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces briefing text from the assembled context
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for one generation call
type GenerateRequest struct {
	// System is the assembled context bundle (system-level context)
	System string

	// Prompt is the short task instruction (user-level)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// MaxLookups bounds how many external lookups the backend may perform.
	// Providers without a lookup tool ignore it.
	MaxLookups int
}

// GenerateResponse contains the backend's output
type GenerateResponse struct {
	// Text is the concatenated text content of the response
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds generation provider configuration
type Config struct {
	// Provider name: "anthropic", "openai", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for Anthropic/OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// MaxLookups forwarded with each request unless overridden
	MaxLookups int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Model:      "",
		Timeout:    300,
		MaxTokens:  4000,
		MaxLookups: 15,
	}
}
