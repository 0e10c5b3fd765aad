package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/course-catalog/internal/logger"
)

const keyPrefix = "session:"

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// rediser defines the Redis commands used by the store.
type rediser interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store keeps server-side session records in Redis. A session maps an opaque
// session ID to the ID of the authenticated user; deleting the record logs
// the user out even if their token has not expired yet.
type Store struct {
	rdb rediser
	ttl time.Duration
}

// New creates a new session store with the given TTL.
func New(rdb rediser, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores a new session for the user and returns its ID.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.NewString()

	err := s.rdb.Set(ctx, keyPrefix+sessionID, userID.String(), s.ttl).Err()
	if err != nil {
		logger.Log.Errorw("failed to create session", "userID", userID, "error", err)
		return "", err
	}

	return sessionID, nil
}

// GetUserID returns the user ID bound to the session, or ErrSessionNotFound.
func (s *Store) GetUserID(ctx context.Context, sessionID string) (uuid.UUID, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrSessionNotFound
		}
		logger.Log.Errorw("failed to get session", "sessionID", sessionID, "error", err)
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrSessionNotFound
	}

	return userID, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	err := s.rdb.Del(ctx, keyPrefix+sessionID).Err()
	if err != nil {
		logger.Log.Errorw("failed to delete session", "sessionID", sessionID, "error", err)
	}
	return err
}
