package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps sessions in Redis so they survive process
// restarts when a Redis instance is configured.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, user *entity.SessionUser) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*entity.SessionUser, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var user entity.SessionUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		// Corrupted value: discard it and treat the session as absent
		s.client.Del(ctx, sessionKeyPrefix+token)
		return nil, ErrSessionNotFound
	}
	return &user, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
