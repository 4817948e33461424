// Package redis provides Redis-based adapters for the gencertify backend.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

const (
	defaultChatPrefix = "chat:session:"
	defaultChatTTL    = 24 * time.Hour
)

// ChatSessionStore keeps chat histories in Redis. Each session is one JSON
// value under a prefixed key with a sliding TTL: every save resets the clock.
type ChatSessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ core.ChatSessionStore = (*ChatSessionStore)(nil)

// NewChatSessionStore creates a Redis-backed chat session store with the
// default prefix and TTL.
func NewChatSessionStore(client redis.UniversalClient) *ChatSessionStore {
	return &ChatSessionStore{
		client: client,
		prefix: defaultChatPrefix,
		ttl:    defaultChatTTL,
	}
}

// NewChatSessionStoreWithTTL creates a chat session store with a custom TTL.
func NewChatSessionStoreWithTTL(client redis.UniversalClient, ttl time.Duration) *ChatSessionStore {
	store := NewChatSessionStore(client)
	if ttl > 0 {
		store.ttl = ttl
	}
	return store
}

// Save stores the session, resetting its TTL.
func (s *ChatSessionStore) Save(ctx context.Context, session *model.ChatSession) error {
	if session == nil || session.ID == "" {
		return apperrors.Validation("chat session id cannot be empty")
	}
	if session.OrganizationID == "" {
		return apperrors.Validation("chat session organization id cannot be empty")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal chat session: %w", err)
	}

	key := s.prefix + session.ID
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get returns the session when it exists and belongs to organizationID. An
// ownership mismatch behaves exactly like an absent session.
func (s *ChatSessionStore) Get(ctx context.Context, organizationID, sessionID string) (*model.ChatSession, error) {
	if sessionID == "" {
		return nil, apperrors.NotFound("chat session not found")
	}

	key := s.prefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("chat session not found")
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var session model.ChatSession
	if unmarshalErr := json.Unmarshal([]byte(data), &session); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal chat session: %w", unmarshalErr)
	}

	if session.OrganizationID != organizationID {
		return nil, apperrors.NotFound("chat session not found")
	}

	return &session, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (s *ChatSessionStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
