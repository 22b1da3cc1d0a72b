// Package llm wraps the Gemini API behind a small tiered-model surface.
// Call sites declare how demanding their task is and the config maps tiers
// to concrete models, so swapping a model never touches extraction or
// drafting code.
package llm

// ModelTier names how demanding a task is.
type ModelTier string

const (
	// TierLite handles quick mechanical tasks, such as condensing an
	// already-extracted fact list.
	TierLite ModelTier = "lite"
	// TierStandard handles structured work, such as company-fact extraction
	// from resolved pages.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles the work where quality shows: drafting the
	// outreach message itself.
	TierAdvanced ModelTier = "advanced"
)

// Provider names an LLM backend.
type Provider string

// ProviderGemini is the only backend currently wired.
const ProviderGemini Provider = "gemini"

// Config maps model tiers to concrete provider models.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the stock Gemini tier mapping.
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

// GetModel returns the model for a tier, falling back to standard and then
// lite when the tier is not mapped. Returns "" when nothing is configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier remapped; the
// receiver is left untouched.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	remapped := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		remapped.Models[k] = v
	}
	remapped.Models[tier] = model
	return remapped
}
