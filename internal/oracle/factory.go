package oracle

import (
	"fmt"
	"strings"
	"time"

	"github.com/avetrov/kyclens/internal/model"
)

// Config holds oracle provider configuration.
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
}

// ConfigFromModel converts the runtime config into an oracle Config.
func ConfigFromModel(c model.OracleConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// New creates an oracle for the configured provider. An empty provider
// returns (nil, nil): the pipeline then runs on deterministic fallbacks
// only.
func New(config Config) (Oracle, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIOracle(config)
	case "anthropic", "claude":
		return NewAnthropicOracle(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown oracle provider: %s (supported: openai, anthropic)", config.Provider)
	}
}
