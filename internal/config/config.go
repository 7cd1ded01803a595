package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. SHOPSEARCH_URL.
const Prefix = "SHOPSEARCH"

// Output formats accepted for printed results.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// Log formats accepted for diagnostics on stderr.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config holds the CLI configuration.
// Environment variables are automatically parsed from the SHOPSEARCH_ prefix;
// command-line flags override them.
type Config struct {
	// Search service
	URL     string        `envconfig:"URL" default:"http://localhost:5000"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"0s"`
	Wait    time.Duration `envconfig:"WAIT" default:"0s"`

	// Default search payload
	Query      string   `envconfig:"QUERY" default:"laptop"`
	Platforms  []string `envconfig:"PLATFORMS" default:"alibaba"`
	MaxResults int      `envconfig:"MAX_RESULTS" default:"0"`

	// Presentation
	Output    string `envconfig:"OUTPUT" default:"json"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`

	// Metrics textfile written after each command; empty disables it.
	MetricsFile string `envconfig:"METRICS_FILE" default:""`
}

// Validate checks enumerated fields and numeric bounds.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("URL must not be empty")
	}
	switch c.Output {
	case OutputJSON, OutputYAML, OutputTable:
	default:
		return fmt.Errorf("unsupported OUTPUT: %s", c.Output)
	}
	switch c.LogFormat {
	case LogConsole, LogJSON:
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}
	if c.Timeout < 0 || c.Wait < 0 {
		return fmt.Errorf("TIMEOUT and WAIT must not be negative")
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("MAX_RESULTS must not be negative")
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Example: SHOPSEARCH_URL, SHOPSEARCH_PLATFORMS=alibaba,temu
// It does not log; the caller owns the logger and reports the result.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewForTesting returns the defaults without reading the environment.
func NewForTesting() *Config {
	return &Config{
		URL:       "http://localhost:5000",
		Query:     "laptop",
		Platforms: []string{"alibaba"},
		Output:    OutputJSON,
		LogFormat: LogConsole,
	}
}
