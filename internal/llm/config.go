// Package llm provides the model client abstraction and the structured
// extraction calls built on top of it. All resume extraction goes through
// this package; callers never touch the provider SDK directly.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: single-field lookups, plain-text fallbacks
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction with JSON output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning (unused by the extraction paths today)
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Per-call deadlines. A call that exceeds its deadline counts as a call
// failure and triggers the same degradation as any other provider error.
const (
	// JSONCallTimeout bounds structured JSON-mode calls
	JSONCallTimeout = 15 * time.Second
	// TextCallTimeout bounds plain-text fallback and drill-down calls
	TextCallTimeout = 10 * time.Second
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// WithOverride returns a Config where every tier resolves to model. Used when
// the operator pins a single model on the command line.
func (c *Config) WithOverride(model string) *Config {
	if model == "" {
		return c
	}
	return &Config{
		Provider: c.Provider,
		Models: map[ModelTier]string{
			TierLite:     model,
			TierStandard: model,
			TierAdvanced: model,
		},
	}
}
