package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chat:session:"

// RedisSessionStore keeps conversation {state, context} blobs in Redis.
// The TTL refreshes on every save; expiry itself is Redis's job, the chat
// layer never deletes sessions.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Load(ctx context.Context, token string) (*commands.SessionBlob, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load chat session", err)
	}

	var blob commands.SessionBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		// A corrupt blob is treated as an expired session rather than an
		// error; the caller starts a fresh greeting cycle.
		return nil, nil
	}
	return &blob, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, blob commands.SessionBlob) error {
	raw, err := json.Marshal(blob)
	if err != nil {
		return infra.WrapRepoErr("failed to encode chat session", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+token, raw, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save chat session", err)
	}
	return nil
}
