// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scoring strategy names accepted in configuration.
const (
	StrategyDeterministic = "deterministic"
	StrategyLLM           = "llm"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	DatabaseURL     string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key (llm strategy only)
	ScoringStrategy string `json:"scoring_strategy,omitempty"` // "deterministic" or "llm"
	OutputDir       string `json:"output_dir,omitempty"`       // Directory rendered documents are written to
	ChromePath      string `json:"chrome_path,omitempty"`      // Browser binary override for PDF printing
	UserID          string `json:"user_id,omitempty"`          // Acting user UUID
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed match output
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Intended as
// the defaults layer under a config file or CLI flags.
func FromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		OutputDir:   os.Getenv("TAILOR_OUTPUT_DIR"),
		ChromePath:  os.Getenv("CHROME_PATH"),
		UserID:      os.Getenv("TAILOR_USER_ID"),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged; CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ScoringStrategy == "" {
		if defaults.ScoringStrategy != "" {
			result.ScoringStrategy = defaults.ScoringStrategy
		} else {
			result.ScoringStrategy = StrategyDeterministic
		}
	}
	if result.OutputDir == "" {
		if defaults.OutputDir != "" {
			result.OutputDir = defaults.OutputDir
		} else {
			result.OutputDir = "output"
		}
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.ScoringStrategy {
	case "", StrategyDeterministic:
	case StrategyLLM:
		if c.APIKey == "" {
			return fmt.Errorf("config error: 'api_key' is required for the llm scoring strategy")
		}
	default:
		return fmt.Errorf("config error: unknown scoring strategy %q", c.ScoringStrategy)
	}
	return nil
}
