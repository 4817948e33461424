package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/data"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
	"github.com/gencertify/gencertify/internal/mocks"
)

type chatServiceMocks struct {
	sessions *mocks.MockChatSessionStore
	provider *mocks.MockModelProvider
	orgs     *mocks.MockOrganizationRepository
	clock    *data.FixedTimeProvider
}

func newTestChatService(t *testing.T) (*ChatService, chatServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := chatServiceMocks{
		sessions: mocks.NewMockChatSessionStore(ctrl),
		provider: mocks.NewMockModelProvider(ctrl),
		orgs:     mocks.NewMockOrganizationRepository(ctrl),
		clock:    data.NewFixedTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	svc := MustNewChatService(ChatServiceOptions{
		Sessions: deps.sessions,
		Provider: deps.provider,
		Orgs:     deps.orgs,
		Time:     deps.clock,
	})
	return svc, deps
}

func TestNewChatService_RequiredDependencies(t *testing.T) {
	svc, err := NewChatService(ChatServiceOptions{})
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestChatService_SendMessage_NewSession(t *testing.T) {
	svc, deps := newTestChatService(t)
	ctx := context.Background()

	deps.orgs.EXPECT().GetByID(ctx, testOrgID).Return(&model.Organization{ID: testOrgID}, nil)
	deps.provider.EXPECT().GenerateChatResponse(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ChatParams) (string, error) {
			assert.Empty(t, params.History, "a fresh session has no prior history")
			assert.Equal(t, "what is iso 27001?", params.Message)
			return "ISO 27001 is an information security standard.", nil
		})

	var saved *model.ChatSession
	deps.sessions.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *model.ChatSession) error {
			saved = session
			return nil
		})

	resp, err := svc.SendMessage(ctx, model.SendChatMessageRequest{
		OrganizationID: testOrgID,
		Message:        "what is iso 27001?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "ISO 27001 is an information security standard.", resp.Response)

	require.NotNil(t, saved)
	assert.Equal(t, resp.SessionID, saved.ID)
	assert.Equal(t, testOrgID, saved.OrganizationID)
	require.Len(t, saved.Messages, 2)
	assert.Equal(t, model.ChatRoleUser, saved.Messages[0].Role)
	assert.Equal(t, model.ChatRoleAssistant, saved.Messages[1].Role)
}

func TestChatService_SendMessage_ExistingSessionPassesHistory(t *testing.T) {
	svc, deps := newTestChatService(t)
	ctx := context.Background()

	existing := &model.ChatSession{
		ID:             "session-1",
		OrganizationID: testOrgID,
		Messages: []model.ChatMessage{
			{Role: model.ChatRoleUser, Content: "hi"},
			{Role: model.ChatRoleAssistant, Content: "hello"},
		},
	}

	deps.orgs.EXPECT().GetByID(ctx, testOrgID).Return(&model.Organization{ID: testOrgID}, nil)
	deps.sessions.EXPECT().Get(ctx, testOrgID, "session-1").Return(existing, nil)
	deps.provider.EXPECT().GenerateChatResponse(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ChatParams) (string, error) {
			require.Len(t, params.History, 2)
			assert.Equal(t, "hi", params.History[0].Content)
			return "reply", nil
		})
	deps.sessions.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *model.ChatSession) error {
			assert.Len(t, session.Messages, 4)
			return nil
		})

	resp, err := svc.SendMessage(ctx, model.SendChatMessageRequest{
		OrganizationID: testOrgID,
		SessionID:      "session-1",
		Message:        "tell me more",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-1", resp.SessionID)
}

func TestChatService_SendMessage_UnknownOrganization(t *testing.T) {
	svc, deps := newTestChatService(t)
	ctx := context.Background()

	deps.orgs.EXPECT().GetByID(ctx, testOrgID).Return(nil, apperrors.NotFound("organization not found"))

	_, err := svc.SendMessage(ctx, model.SendChatMessageRequest{
		OrganizationID: testOrgID,
		Message:        "hi",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestChatService_SendMessage_UnknownSession(t *testing.T) {
	svc, deps := newTestChatService(t)
	ctx := context.Background()

	deps.orgs.EXPECT().GetByID(ctx, testOrgID).Return(&model.Organization{ID: testOrgID}, nil)
	deps.sessions.EXPECT().Get(ctx, testOrgID, "missing").
		Return(nil, apperrors.NotFound("chat session not found"))

	_, err := svc.SendMessage(ctx, model.SendChatMessageRequest{
		OrganizationID: testOrgID,
		SessionID:      "missing",
		Message:        "hi",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestChatService_SendMessage_Validation(t *testing.T) {
	svc, _ := newTestChatService(t)

	_, err := svc.SendMessage(context.Background(), model.SendChatMessageRequest{
		OrganizationID: testOrgID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestChatService_History(t *testing.T) {
	svc, deps := newTestChatService(t)
	ctx := context.Background()

	deps.sessions.EXPECT().Get(ctx, testOrgID, "session-1").Return(&model.ChatSession{
		ID:             "session-1",
		OrganizationID: testOrgID,
		Messages: []model.ChatMessage{
			{Role: model.ChatRoleUser, Content: "hi"},
		},
	}, nil)

	messages, err := svc.History(ctx, testOrgID, "session-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Content)
}

func TestAppendCappedDropsOldest(t *testing.T) {
	var messages []model.ChatMessage
	for i := range maxChatHistory + 10 {
		messages = appendCapped(messages, model.ChatMessage{
			Role:    model.ChatRoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	require.Len(t, messages, maxChatHistory)
	assert.Equal(t, "message 10", messages[0].Content)
	assert.Equal(t, fmt.Sprintf("message %d", maxChatHistory+9), messages[maxChatHistory-1].Content)
}
