package model

import "time"

// Config is the full runtime configuration. Values come from flags,
// KYCLENS_* env vars, and ~/.kyclens/config.yaml, highest first.
type Config struct {
	Oracle      OracleConfig      `yaml:"oracle" mapstructure:"oracle"`
	Thresholds  ThresholdConfig   `yaml:"thresholds" mapstructure:"thresholds"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Fetch       FetchConfig       `yaml:"fetch" mapstructure:"fetch"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Classify    ClassifyConfig    `yaml:"classify" mapstructure:"classify"`
}

// OracleConfig configures the semantic oracle backend.
type OracleConfig struct {
	Provider   string        `yaml:"provider" mapstructure:"provider"` // openai, anthropic, "" (disabled)
	Model      string        `yaml:"model" mapstructure:"model"`
	APIKey     string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens  int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	CacheTTL   time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"` // 0 disables the response cache
	RatePerSec float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	RateBurst  int           `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// ThresholdConfig carries the name-match policy knobs.
type ThresholdConfig struct {
	NameMatch         float64 `yaml:"name_match" mapstructure:"name_match"`                   // similarity / confidence cutoff
	CommonNameAnchors int     `yaml:"common_name_anchors" mapstructure:"common_name_anchors"` // required anchors for common surnames
	RareNameAnchors   int     `yaml:"rare_name_anchors" mapstructure:"rare_name_anchors"`
}

// ConcurrencyConfig bounds parallel article processing.
type ConcurrencyConfig struct {
	ArticleWorkers int           `yaml:"article_workers" mapstructure:"article_workers"`
	CaseTimeout    time.Duration `yaml:"case_timeout" mapstructure:"case_timeout"`
}

// FetchConfig configures the optional ad-hoc article fetcher.
type FetchConfig struct {
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HonorRobots  bool          `yaml:"honor_robots" mapstructure:"honor_robots"`
}

// ServerConfig configures the Case API.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// ClassifyConfig gates outcome/category classification. When disabled
// every article's outcome defaults to none and the aggregator's
// severity branches stay dormant.
type ClassifyConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Oracle: OracleConfig{
			Provider:   "",
			Model:      "",
			Timeout:    30 * time.Second,
			MaxTokens:  1000,
			CacheTTL:   10 * time.Minute,
			RatePerSec: 5,
			RateBurst:  5,
		},
		Thresholds: ThresholdConfig{
			NameMatch:         0.70,
			CommonNameAnchors: 2,
			RareNameAnchors:   1,
		},
		Concurrency: ConcurrencyConfig{
			ArticleWorkers: 4,
			CaseTimeout:    2 * time.Minute,
		},
		Fetch: FetchConfig{
			Enabled:      false,
			Timeout:      15 * time.Second,
			UserAgent:    "kyclens/0.1 (+https://github.com/avetrov/kyclens)",
			MaxBodyBytes: 2_000_000,
			HonorRobots:  true,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Classify: ClassifyConfig{Enabled: false},
	}
}
