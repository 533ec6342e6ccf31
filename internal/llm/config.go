// Package llm provides the external semantic-judgment client used by the
// matching engine's external-reasoner scoring strategy.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for per-item relevance scoring.
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction with moderate reasoning.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the scoring client.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the lite tier.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
