package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"sitrep/internal/llm"
	"sitrep/internal/logging"
	"sitrep/internal/model"
	"sitrep/internal/pipeline"
	"sitrep/internal/store"
)

// loadConfig layers the config file and environment over the built-in
// defaults.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	// A named profile only sets the prior-output budget when the file does
	// not pin it explicitly
	if !viper.IsSet("context.prev_records") && !viper.IsSet("context.prev_chars") {
		cfg.Context.ApplyProfile(cfg.Context.Profile)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose lowers the level to debug.
func newLogger() (*zap.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logging.New(level)
}

// newStore opens the state store.
func newStore(cfg *model.Config, log *zap.Logger) *store.Store {
	return store.New(cfg.DataDir, log)
}

// newGenerator resolves credentials and builds the paced generator.
// A missing API key fails here, before any state is touched.
func newGenerator(cfg *model.Config, log *zap.Logger) (*llm.Generator, error) {
	switch cfg.Generation.Provider {
	case "anthropic", "claude", "":
		cfg.Generation.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Generation.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "openai":
		cfg.Generation.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Generation.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Generation.BaseURL = baseURL
		}
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.Generation))
	if err != nil {
		return nil, err
	}

	return llm.NewGenerator(provider, llm.GeneratorOptions{
		MaxRetries: cfg.Generation.MaxRetries,
		Backoff:    time.Duration(cfg.Generation.BackoffSeconds) * time.Second,
		Pace:       time.Duration(cfg.Generation.PaceSeconds) * time.Second,
	}, log), nil
}

// newCycle wires the orchestrator from configuration.
func newCycle(cfg *model.Config, gen *llm.Generator, log *zap.Logger) (*pipeline.Cycle, error) {
	return pipeline.New(cfg, newStore(cfg, log), gen, log)
}

// itemTime renders the display timestamp for appended items.
func itemTime(cfg *model.Config) string {
	return time.Now().In(cfg.Context.Location()).Format("02/01/2006 15:04")
}
