package config

import "time"

// AIConfig contains model provider configuration. With the AI_ prefix the
// variables are AI_MODEL_PROVIDER, AI_API_KEY, AI_MODEL, AI_BASE_URL, and
// AI_TIMEOUT.
type AIConfig struct {
	// Provider selects the model backend. Valid values: openai, anthropic,
	// canned. An unrecognized value falls back to openai.
	Provider string `env:"MODEL_PROVIDER" envDefault:"openai"`

	// APIKey authenticates against the provider. Required for openai and
	// anthropic; ignored by canned.
	APIKey string `env:"API_KEY" envDefault:""`

	// Model overrides the provider's default model name.
	Model string `env:"MODEL" envDefault:""`

	// BaseURL overrides the provider's API endpoint, for proxies and tests.
	BaseURL string `env:"BASE_URL" envDefault:""`

	// Timeout bounds one model call end to end.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Sanitize applies guardrails to model provider configuration values.
func (a *AIConfig) Sanitize() {
	if a.Timeout < 5*time.Second {
		a.Timeout = 5 * time.Second
	}
}
