package llm

import (
	"fmt"
	"strings"

	"sitrep/internal/model"
)

// NewProvider creates a generation provider based on configuration.
// Anthropic is the default backend.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "anthropic", "claude", "":
		return NewAnthropicProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: anthropic, openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.GenerationConfig to llm.Config
func ConfigFromModel(gen model.GenerationConfig) Config {
	return Config{
		Provider:   gen.Provider,
		Model:      gen.Model,
		APIKey:     gen.APIKey,
		BaseURL:    gen.BaseURL,
		Timeout:    gen.Timeout,
		MaxTokens:  gen.MaxTokens,
		MaxLookups: gen.MaxLookups,
	}
}
