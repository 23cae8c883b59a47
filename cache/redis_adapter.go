package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyPrefix = "payment:ref:"
	paymentMethodsKey    = "payment:methods"

	// A verify call for the same reference more than a day later is a replay,
	// not a double-submit from the redirect page.
	idempotencyKeyTTL = 24 * time.Hour

	paymentMethodsTTL = 5 * time.Minute
)

// RedisAdapter implements CacheRepository backed by redis.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *RedisAdapter) ReleaseIdempotency(ctx context.Context, key string) error {
	return r.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}

func (r *RedisAdapter) GetPaymentMethods(ctx context.Context) ([]string, error) {
	raw, err := r.client.Get(ctx, paymentMethodsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *RedisAdapter) SetPaymentMethods(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, paymentMethodsKey, raw, paymentMethodsTTL).Err()
}
