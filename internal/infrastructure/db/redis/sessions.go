package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRegistry tracks active login sessions in Redis.
// Key format: session:<jti>, value "1", expiring with the token.
type SessionRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRegistry creates a SessionRegistry wrapping the given client.
// The TTL should match the token TTL so revocation state never outlives
// the token itself.
func NewSessionRegistry(client *redis.Client, ttl time.Duration) *SessionRegistry {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRegistry{client: client, ttl: ttl}
}

// Create records a new active session.
func (s *SessionRegistry) Create(ctx context.Context, sessionID string) error {
	if err := s.client.Set(ctx, s.key(sessionID), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Exists reports whether the session is still active.
func (s *SessionRegistry) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

// Revoke removes the session immediately.
func (s *SessionRegistry) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionRegistry) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
