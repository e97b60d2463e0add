package session

import (
	"context"
	"errors"
	"time"

	"foodexpress-storefront/pkg/cache"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in redis so identity and pending notifications
// survive storefront restarts and redeploys.
type RedisStore struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

func NewRedisStore(c *cache.RedisCache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	var sess Session
	err := s.cache.Get(ctx, keyPrefix+sessionID, &sess)
	if errors.Is(err, cache.ErrMiss) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, session *Session) error {
	return s.cache.Set(ctx, keyPrefix+sessionID, session, s.ttl)
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, keyPrefix+sessionID)
}
