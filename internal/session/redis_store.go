package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mistrimandi/mistri/internal/identity"
)

const defaultSessionKey = "session:current"

// RedisStore persists the session record under a single Redis key. SET and
// DEL replace the record atomically.
type RedisStore struct {
	cache *redis.Client
	key   string
}

// NewRedisStore builds a Redis-backed session store. An empty key falls back
// to the default.
func NewRedisStore(cache *redis.Client, key string) *RedisStore {
	if key == "" {
		key = defaultSessionKey
	}
	return &RedisStore{cache: cache, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (identity.Identity, bool, error) {
	data, err := s.cache.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return identity.Identity{}, false, nil
	}
	if err != nil {
		return identity.Identity{}, false, fmt.Errorf("load session record: %w", err)
	}

	var rec identity.Identity
	if err := json.Unmarshal(data, &rec); err != nil {
		return identity.Identity{}, false, fmt.Errorf("decode session record: %w", err)
	}
	return rec, true, nil
}

func (s *RedisStore) Save(ctx context.Context, rec identity.Identity) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.cache.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.cache.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
