package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/domain/model"
)

func TestNewOpenAIRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAI(Config{}, nil)
	require.Error(t, err)
}

func TestNewAnthropicRequiresAPIKey(t *testing.T) {
	_, err := NewAnthropic(Config{}, nil)
	require.Error(t, err)
}

func TestNewFallsBackToOpenAI(t *testing.T) {
	p, err := New(Config{Name: "mystery-vendor", APIKey: "key"}, nil)
	require.NoError(t, err)
	_, ok := p.(*llmProvider)
	assert.True(t, ok, "unknown provider should resolve to the openai client")
}

func TestNewCannedProvider(t *testing.T) {
	p, err := New(Config{Name: "canned"}, nil)
	require.NoError(t, err)
	_, ok := p.(*Canned)
	assert.True(t, ok)
}

func TestOpenAIEvaluateCertification(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		answer := map[string]any{
			"overall_score": 82.5,
			"summary":       "solid posture",
		}
		answerJSON, _ := json.Marshal(answer)
		resp := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": string(answerJSON)}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	p, err := NewOpenAI(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	eval, err := p.EvaluateCertification(context.Background(), core.EvaluateCertificationParams{
		OrganizationID:    "org-1",
		CertificationType: model.CertificationISO27001,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, model.CertificationISO27001, eval.CertificationType)
	assert.InDelta(t, 82.5, eval.OverallScore, 0.001)
	assert.Equal(t, "solid posture", eval.Summary)

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first, _ := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestOpenAIEvaluateStripsMarkdownFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		content := "```json\n{\"overall_score\": 60}\n```"
		resp := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	p, err := NewOpenAI(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	eval, err := p.EvaluateCertification(context.Background(), core.EvaluateCertificationParams{
		OrganizationID:    "org-1",
		CertificationType: model.CertificationGDPR,
	})
	require.NoError(t, err)
	assert.InDelta(t, 60, eval.OverallScore, 0.001)
}

func TestOpenAIErrorStatusSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer srv.Close()

	p, err := NewOpenAI(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = p.GenerateChatResponse(context.Background(), core.ChatParams{Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestAnthropicChatResponse(t *testing.T) {
	var gotVersion, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		resp := map[string]any{
			"content": []any{map[string]any{"type": "text", "text": "hello from claude"}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	p, err := NewAnthropic(Config{APIKey: "ak-test", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	reply, err := p.GenerateChatResponse(context.Background(), core.ChatParams{
		Message: "what is soc 2?",
		History: []model.ChatMessage{
			{Role: model.ChatRoleUser, Content: "hi"},
			{Role: model.ChatRoleAssistant, Content: "hello"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello from claude", reply)
	assert.Equal(t, "ak-test", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	// System prompt rides as a top-level field, not a message.
	assert.NotEmpty(t, gotBody["system"])
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 3)
}

func TestCannedEvaluateCertification(t *testing.T) {
	p := NewCanned()

	eval, err := p.EvaluateCertification(context.Background(), core.EvaluateCertificationParams{
		OrganizationID:    "org-1",
		CertificationType: model.CertificationSOC2,
	})
	require.NoError(t, err)

	assert.Equal(t, model.CertificationSOC2, eval.CertificationType)
	assert.InDelta(t, 75.5, eval.OverallScore, 0.001)
	require.Len(t, eval.RequirementEvaluations, 1)
	assert.Equal(t, "REQ-001", eval.RequirementEvaluations[0].RequirementID)
}

func TestCannedGenerateDocument(t *testing.T) {
	p := NewCanned()

	doc, err := p.GenerateDocument(context.Background(), core.GenerateDocumentParams{
		OrganizationID: "org-1",
		DocumentType:   model.DocumentInfoSecPolicy,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Information Security Policy"))
	assert.Contains(t, doc, "information security policy controls")
}

func TestCertificationLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"iso_27001", "Iso 27001"},
		{"information_security_policy", "Information Security Policy"},
		{"gdpr", "Gdpr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, certificationLabel(tt.in))
	}
}
