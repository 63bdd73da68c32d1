package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/avetrov/kyclens/internal/cache"
	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/oracle"
	"github.com/avetrov/kyclens/internal/pipeline"
)

// loadConfig builds the runtime config: built-in defaults overlaid with
// the config file and KYCLENS_* env vars already read into viper.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("apply configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the JSON logger shared by all commands.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveAPIKey fills the oracle API key from the environment when the
// config carries none.
func resolveAPIKey(cfg *model.Config) error {
	if cfg.Oracle.Provider == "" || cfg.Oracle.APIKey != "" {
		return nil
	}
	switch cfg.Oracle.Provider {
	case "openai":
		cfg.Oracle.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Oracle.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	}
	return nil
}

// buildOracle constructs the configured oracle with its rate-limit and
// cache decorators. Returns nil when no provider is configured.
func buildOracle(cfg *model.Config) (oracle.Oracle, error) {
	orc, err := oracle.New(oracle.ConfigFromModel(cfg.Oracle))
	if err != nil {
		return nil, err
	}
	if orc == nil {
		return nil, nil
	}

	if cfg.Oracle.RatePerSec > 0 {
		orc = oracle.NewLimited(orc, cfg.Oracle.RatePerSec, cfg.Oracle.RateBurst)
	}
	if cfg.Oracle.CacheTTL > 0 {
		mem := cache.NewMemory(cfg.Oracle.CacheTTL, 5*time.Minute)
		orc = oracle.NewCached(orc, mem, cfg.Oracle.CacheTTL)
	}
	return orc, nil
}

// buildPipeline wires the full pipeline from config.
func buildPipeline(cfg *model.Config, logger *slog.Logger) (*pipeline.Pipeline, error) {
	if err := resolveAPIKey(cfg); err != nil {
		return nil, err
	}
	orc, err := buildOracle(cfg)
	if err != nil {
		return nil, err
	}
	if orc == nil {
		logger.Info("no oracle provider configured; running deterministic fallbacks only")
	}
	return pipeline.New(cfg, orc, logger), nil
}
