package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/gencertify/gencertify/internal/core"
)

// OpenAIEndpoint is the OpenAI chat completions URL.
const OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"

const defaultOpenAIModel = "gpt-4o"

// openAIContentExpr extracts the assistant text from a chat completions
// response.
const openAIContentExpr = "choices[0].message.content"

type openAIClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewOpenAI constructs a model provider backed by the OpenAI chat completions
// API. Callers must provide an API key.
//
//nolint:ireturn // factory returns the port.
func NewOpenAI(cfg Config, logger *slog.Logger) (core.ModelProvider, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("openai api key is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = OpenAIEndpoint
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultOpenAIModel
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &llmProvider{completer: &openAIClient{
		apiKey:  key,
		model:   model,
		baseURL: baseURL,
		client:  cfg.httpClient(),
		logger:  logger.With("component", "openai_provider"),
	}}, nil
}

func (c *openAIClient) complete(ctx context.Context, system string, turns []chatTurn) (string, error) {
	messages := make([]map[string]string, 0, len(turns)+1)
	if system != "" {
		messages = append(messages, map[string]string{"role": "system", "content": system})
	}
	for _, turn := range turns {
		messages = append(messages, map[string]string{"role": turn.Role, "content": turn.Content})
	}

	body, err := json.Marshal(map[string]any{
		"model":    c.model,
		"messages": messages,
	})
	if err != nil {
		return "", fmt.Errorf("encode openai payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	return extractContent(resp, "openai", openAIContentExpr)
}

// extractContent reads a vendor response and pulls the assistant text out
// with a jmespath expression. The body is always fully read and closed.
func extractContent(resp *http.Response, vendor, expr string) (string, error) {
	respBody, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("read %s response: %w", vendor, readErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close %s response body: %w", vendor, closeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s api %s: %s", vendor, resp.Status, strings.TrimSpace(string(respBody)))
	}

	var payload any
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("decode %s response: %w", vendor, err)
	}

	value, err := jmespath.Search(expr, payload)
	if err != nil {
		return "", fmt.Errorf("extract %s content: %w", vendor, err)
	}

	text, ok := value.(string)
	if !ok || text == "" {
		return "", fmt.Errorf("%s response has no content", vendor)
	}
	return text, nil
}
