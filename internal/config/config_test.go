package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"database_url": "postgres://localhost/tailor",
		"scoring_strategy": "llm",
		"api_key": "test-key",
		"output_dir": "docs",
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/tailor", cfg.DatabaseURL)
	assert.Equal(t, StrategyLLM, cfg.ScoringStrategy)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "docs", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{ScoringStrategy: StrategyLLM}
	defaults := Config{
		DatabaseURL: "postgres://localhost/tailor",
		APIKey:      "env-key",
		UserID:      "user-1",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "postgres://localhost/tailor", merged.DatabaseURL)
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, StrategyLLM, merged.ScoringStrategy)
	assert.Equal(t, "user-1", merged.UserID)
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://explicit"}
	defaults := Config{DatabaseURL: "postgres://default"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "postgres://explicit", merged.DatabaseURL)
}

func TestMergeWithDefaults_AppliesBuiltinDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, StrategyDeterministic, merged.ScoringStrategy)
	assert.Equal(t, "output", merged.OutputDir)
}

func TestValidate_LLMStrategyRequiresAPIKey(t *testing.T) {
	cfg := Config{ScoringStrategy: StrategyLLM}
	assert.Error(t, cfg.Validate())

	cfg.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownStrategy(t *testing.T) {
	cfg := Config{ScoringStrategy: "magic"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_DeterministicNeedsNoKey(t *testing.T) {
	assert.NoError(t, (&Config{ScoringStrategy: StrategyDeterministic}).Validate())
	assert.NoError(t, (&Config{}).Validate())
}
