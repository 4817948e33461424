package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gencertify/gencertify/internal/core"
)

// AnthropicEndpoint is the Anthropic messages API URL.
const AnthropicEndpoint = "https://api.anthropic.com/v1/messages"

const (
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	anthropicVersion      = "2023-06-01"
	anthropicMaxTokens    = 4096
	anthropicContentExpr  = "content[0].text"
)

type anthropicClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewAnthropic constructs a model provider backed by the Anthropic messages
// API. Callers must provide an API key.
//
//nolint:ireturn // factory returns the port.
func NewAnthropic(cfg Config, logger *slog.Logger) (core.ModelProvider, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("anthropic api key is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = AnthropicEndpoint
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultAnthropicModel
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &llmProvider{completer: &anthropicClient{
		apiKey:  key,
		model:   model,
		baseURL: baseURL,
		client:  cfg.httpClient(),
		logger:  logger.With("component", "anthropic_provider"),
	}}, nil
}

func (c *anthropicClient) complete(ctx context.Context, system string, turns []chatTurn) (string, error) {
	messages := make([]map[string]string, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, map[string]string{"role": turn.Role, "content": turn.Content})
	}

	payload := map[string]any{
		"model":      c.model,
		"max_tokens": anthropicMaxTokens,
		"messages":   messages,
	}
	if system != "" {
		payload["system"] = system
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode anthropic payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create anthropic request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	return extractContent(resp, "anthropic", anthropicContentExpr)
}
