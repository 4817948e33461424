package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

// chatTurn is one message in a completion request, vendor-neutral.
type chatTurn struct {
	Role    string
	Content string
}

// completer is the vendor-specific piece of an LLM provider: submit a system
// prompt plus conversation turns, get the assistant text back.
type completer interface {
	complete(ctx context.Context, system string, turns []chatTurn) (string, error)
}

// llmProvider implements core.ModelProvider on top of any completer. The
// prompt construction and response parsing are shared; only the wire format
// differs per vendor.
type llmProvider struct {
	completer completer
}

func (p *llmProvider) EvaluateCertification(
	ctx context.Context,
	params core.EvaluateCertificationParams,
) (*model.CertificationEvaluation, error) {
	system, user := evaluationPrompt(params)
	text, err := p.completer.complete(ctx, system, []chatTurn{{Role: roleUser, Content: user}})
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", params.CertificationType, err)
	}

	eval, err := parseCertificationEvaluation(params.CertificationType, text)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "parse %s evaluation", params.CertificationType)
	}
	return eval, nil
}

func (p *llmProvider) GenerateDocument(ctx context.Context, params core.GenerateDocumentParams) (string, error) {
	system, user := documentPrompt(params)
	text, err := p.completer.complete(ctx, system, []chatTurn{{Role: roleUser, Content: user}})
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", params.DocumentType, err)
	}
	return text, nil
}

func (p *llmProvider) GenerateChatResponse(ctx context.Context, params core.ChatParams) (string, error) {
	turns := make([]chatTurn, 0, len(params.History)+1)
	for _, msg := range params.History {
		turns = append(turns, chatTurn{Role: string(msg.Role), Content: msg.Content})
	}
	turns = append(turns, chatTurn{Role: roleUser, Content: params.Message})

	text, err := p.completer.complete(ctx, chatSystemPrompt, turns)
	if err != nil {
		return "", fmt.Errorf("chat response: %w", err)
	}
	return text, nil
}

// parseCertificationEvaluation decodes the model's JSON answer. Models wrap
// JSON in markdown fences often enough that we strip them first.
func parseCertificationEvaluation(
	certType model.CertificationType,
	text string,
) (*model.CertificationEvaluation, error) {
	payload := strings.TrimSpace(text)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)

	var eval model.CertificationEvaluation
	if err := json.Unmarshal([]byte(payload), &eval); err != nil {
		return nil, fmt.Errorf("decode evaluation payload: %w", err)
	}
	eval.CertificationType = certType
	return &eval, nil
}
