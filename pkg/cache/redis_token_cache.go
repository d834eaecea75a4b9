package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
)

// RedisTokenCache shares guard lookups across instances. Selected when
// REDIS_URL is configured.
type RedisTokenCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenCache(url string, ttl time.Duration) (*RedisTokenCache, error) {
	opts, err := redis.ParseURL(url)

	if err != nil {
		return nil, err
	}

	return &RedisTokenCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

func (r *RedisTokenCache) Get(ctx context.Context, token string) (domain.User, bool) {
	payload, err := r.client.Get(ctx, cacheKey(token)).Bytes()

	if err != nil {
		return domain.User{}, false
	}

	var user domain.User

	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.User{}, false
	}

	return user, true
}

func (r *RedisTokenCache) Set(ctx context.Context, token string, user domain.User) {
	payload, err := json.Marshal(user)

	if err != nil {
		return
	}

	r.client.Set(ctx, cacheKey(token), payload, r.ttl)
}

func (r *RedisTokenCache) Delete(ctx context.Context, token string) {
	r.client.Del(ctx, cacheKey(token))
}

func (r *RedisTokenCache) Close() error {
	return r.client.Close()
}

func cacheKey(token string) string {
	return "session:" + token
}
