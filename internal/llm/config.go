package llm

// Config holds all configuration for the generative backend.
type Config struct {
	Enabled     bool    `mapstructure:"enabled"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"` // empty uses the provider default
	Model       string  `mapstructure:"model"`
	TimeoutMs   int     `mapstructure:"timeout_ms"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled by default; template substitution serves answers instead.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Model:       "gpt-4o-mini",
		TimeoutMs:   10000,
		Temperature: 0.7,
		MaxTokens:   500,
	}
}
