package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/data"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

// maxChatHistory caps how many messages a session keeps. Older messages fall
// off so prompts stay bounded.
const maxChatHistory = 50

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Sessions core.ChatSessionStore
	Provider core.ModelProvider
	Orgs     core.OrganizationRepository
	Time     data.TimeProvider
	Logger   *slog.Logger
}

// ChatService runs the certification assistant conversation: it appends the
// user message to the session, asks the model provider for a reply, and
// persists the updated history.
type ChatService struct {
	sessions core.ChatSessionStore
	provider core.ModelProvider
	orgs     core.OrganizationRepository
	time     data.TimeProvider
	logger   *slog.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(opts ChatServiceOptions) (*ChatService, error) {
	if opts.Sessions == nil {
		return nil, errors.New("chat session store is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("model provider is required")
	}
	if opts.Orgs == nil {
		return nil, errors.New("organization repository is required")
	}

	timeProvider := opts.Time
	if timeProvider == nil {
		timeProvider = &data.RealTimeProvider{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ChatService{
		sessions: opts.Sessions,
		provider: opts.Provider,
		orgs:     opts.Orgs,
		time:     timeProvider,
		logger:   logger.With("component", "chat_service"),
	}, nil
}

// MustNewChatService constructs a ChatService or panics.
func MustNewChatService(opts ChatServiceOptions) *ChatService {
	svc, err := NewChatService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// SendMessage handles one chat turn. A blank session id starts a new
// session; an unknown or foreign session id is a NotFound error.
func (s *ChatService) SendMessage(ctx context.Context, req model.SendChatMessageRequest) (*model.ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if _, err := s.orgs.GetByID(ctx, req.OrganizationID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("organization %s not found", req.OrganizationID)
		}
		return nil, fmt.Errorf("fetch organization: %w", err)
	}

	session, err := s.loadOrCreateSession(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.time.Now().UTC()
	history := session.Messages
	session.Messages = appendCapped(session.Messages, model.ChatMessage{
		Role:      model.ChatRoleUser,
		Content:   req.Message,
		Timestamp: now,
	})

	reply, err := s.provider.GenerateChatResponse(ctx, core.ChatParams{
		OrganizationID: req.OrganizationID,
		SessionID:      session.ID,
		Message:        req.Message,
		History:        history,
	})
	if err != nil {
		return nil, fmt.Errorf("generate chat response: %w", err)
	}

	session.Messages = appendCapped(session.Messages, model.ChatMessage{
		Role:      model.ChatRoleAssistant,
		Content:   reply,
		Timestamp: s.time.Now().UTC(),
	})
	session.UpdatedAt = s.time.Now().UTC()

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save chat session: %w", err)
	}

	s.logger.InfoContext(ctx, "chat message handled",
		"organization_id", req.OrganizationID,
		"session_id", session.ID,
		"history_len", len(session.Messages))

	return &model.ChatResponse{
		SessionID: session.ID,
		Response:  reply,
	}, nil
}

func (s *ChatService) loadOrCreateSession(
	ctx context.Context,
	req model.SendChatMessageRequest,
) (*model.ChatSession, error) {
	if req.SessionID == "" {
		now := s.time.Now().UTC()
		return &model.ChatSession{
			ID:             uuid.NewString(),
			OrganizationID: req.OrganizationID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil
	}

	session, err := s.sessions.Get(ctx, req.OrganizationID, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get chat session: %w", err)
	}
	return session, nil
}

// History returns the stored messages of a session.
func (s *ChatService) History(ctx context.Context, organizationID, sessionID string) ([]model.ChatMessage, error) {
	session, err := s.sessions.Get(ctx, organizationID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get chat session: %w", err)
	}
	return session.Messages, nil
}

// appendCapped appends a message, dropping the oldest entries past the cap.
func appendCapped(messages []model.ChatMessage, msg model.ChatMessage) []model.ChatMessage {
	messages = append(messages, msg)
	if len(messages) > maxChatHistory {
		messages = messages[len(messages)-maxChatHistory:]
	}
	return messages
}
