// Package llm provides the chat-completion client abstraction used by the
// remote extraction, parsing, and tailoring stages.
package llm

// ModelTier selects the model and sampling parameters for a call.
type ModelTier string

const (
	// TierExtraction is used for structured extraction and parsing. Low
	// temperature for consistent JSON output.
	TierExtraction ModelTier = "extraction"
	// TierTailoring is used for rewriting content. Moderate temperature so
	// the rewrite is not a verbatim copy.
	TierTailoring ModelTier = "tailoring"
)

// Provider identifies a chat-completion backend.
type Provider string

// Supported providers.
const (
	// ProviderGroq talks to Groq's OpenAI-compatible endpoint.
	ProviderGroq Provider = "groq"
	// ProviderGemini talks to Google Gemini.
	ProviderGemini Provider = "gemini"
)

// groqBaseURL is Groq's OpenAI-compatible chat-completions endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// Config holds the provider and per-tier model selection.
type Config struct {
	Provider Provider
	BaseURL  string
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Groq configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		BaseURL:  groqBaseURL,
		Models: map[ModelTier]string{
			TierExtraction: "openai/gpt-oss-20b",
			TierTailoring:  "qwen-3-32b",
		},
	}
}

// GeminiConfig returns the configuration for the Gemini provider.
func GeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierExtraction: "gemini-2.5-flash",
			TierTailoring:  "gemini-2.5-pro",
		},
	}
}

// ConfigForProvider returns the default configuration for a provider name.
func ConfigForProvider(provider string) *Config {
	if Provider(provider) == ProviderGemini {
		return GeminiConfig()
	}
	return DefaultConfig()
}

// GetModel returns the model name for a tier, falling back to the
// extraction model when the tier has none configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierExtraction]
}

// Temperature returns the sampling temperature for a tier.
func (c *Config) Temperature(tier ModelTier) float64 {
	if tier == TierTailoring {
		return 0.3
	}
	return 0.1
}

// MaxTokens returns the completion token budget for a tier.
func (c *Config) MaxTokens(tier ModelTier) int64 {
	if tier == TierTailoring {
		return 4000
	}
	return 2500
}
