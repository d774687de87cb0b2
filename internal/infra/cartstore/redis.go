package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-management-system/internal/domain/cart"
	"hotel-management-system/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// RedisStore keeps carts in Redis with a TTL, so abandoned selections
// expire on their own instead of accumulating.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, guestID uuid.UUID) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, keyPrefix+guestID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart")
	}
	return &c, nil
}

func (s *RedisStore) Put(ctx context.Context, guestID uuid.UUID, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.client.Set(ctx, keyPrefix+guestID.String(), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store cart")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, guestID uuid.UUID) error {
	if err := s.client.Del(ctx, keyPrefix+guestID.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}
