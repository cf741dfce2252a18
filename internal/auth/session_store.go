package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"msgboard/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStore defines the server-side session record operations.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (userID uint, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps session records in Redis.
type RedisSessionStore struct {
	cache *cache.Client
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a new session store.
func NewRedisSessionStore(cache *cache.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

// Save stores the session's user id with TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	value := strconv.FormatUint(uint64(userID), 10)
	if err := s.cache.Set(ctx, sessionKeyPrefix+sessionID, []byte(value), ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get looks up the user id of a session.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (uint, bool, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return 0, false, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid session record: %w", err)
	}
	return uint(id), true, nil
}

// Delete removes a session record.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
