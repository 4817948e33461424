// Package provider contains the model provider adapters. Each adapter speaks
// one vendor's HTTP API and implements the core.ModelProvider port; the
// variant is selected by configuration.
package provider

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gencertify/gencertify/internal/core"
)

// Provider names accepted by New.
const (
	NameOpenAI    = "openai"
	NameAnthropic = "anthropic"
	NameCanned    = "canned"
)

// Config selects and configures a model provider.
type Config struct {
	// Name picks the provider variant. Unknown names fall back to openai.
	Name string
	// APIKey authenticates against the vendor API.
	APIKey string
	// Model is the vendor model identifier.
	Model string
	// BaseURL overrides the vendor endpoint (useful for tests).
	BaseURL string
	// Timeout bounds each provider HTTP call.
	Timeout time.Duration
	// Client overrides the HTTP client (useful for tests).
	Client *http.Client
}

func (c *Config) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// New constructs the configured model provider. An unknown provider name
// falls back to openai.
//
//nolint:ireturn // the port is the whole point of the factory.
func New(cfg Config, logger *slog.Logger) (core.ModelProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	name := strings.ToLower(strings.TrimSpace(cfg.Name))
	switch name {
	case NameOpenAI:
		return NewOpenAI(cfg, logger)
	case NameAnthropic:
		return NewAnthropic(cfg, logger)
	case NameCanned:
		return NewCanned(), nil
	default:
		logger.Warn("unknown model provider, defaulting to openai", "provider", name)
		return NewOpenAI(cfg, logger)
	}
}
