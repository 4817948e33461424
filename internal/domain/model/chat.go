package model

import (
	"errors"
	"time"
)

// ChatRole is the author of a chat message.
type ChatRole string

const (
	// ChatRoleUser marks a message from the organization's user.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant marks a model-generated reply.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one message in a chat session.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is the stored history of one assistant conversation. Sessions
// live in the cache with a TTL; history is capped to the most recent messages.
type ChatSession struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	Messages       []ChatMessage `json:"messages"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// SendChatMessageRequest is the request body for sending a chat message.
// SessionID is optional; a new session is created when blank.
type SendChatMessageRequest struct {
	OrganizationID string `json:"organization_id"`
	SessionID      string `json:"session_id,omitempty"`
	Message        string `json:"message"`
}

// Validate validates the SendChatMessageRequest fields.
func (r *SendChatMessageRequest) Validate() error {
	if r.OrganizationID == "" {
		return errors.New("organization id is required")
	}
	if r.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

// ChatResponse is the reply returned for a sent chat message.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}
