package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/codetrackr/internal/application/service"
)

const refreshTokenPrefix = "refresh:"

var ErrTokenNotFound = errors.New("refresh token not found")

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) service.RefreshTokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Store(ctx context.Context, token string, ownerID uuid.UUID, ttl time.Duration) error {
	key := refreshTokenPrefix + token
	if err := s.client.Set(ctx, key, ownerID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token failed: %w", err)
	}
	return nil
}

// Consume reads and deletes the token atomically so it cannot be replayed.
func (s *redisTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	key := refreshTokenPrefix + token

	val, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrTokenNotFound
		}
		return uuid.Nil, fmt.Errorf("consume refresh token failed: %w", err)
	}

	ownerID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return ownerID, nil
}
