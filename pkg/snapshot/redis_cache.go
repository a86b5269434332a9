package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache stores the subscription record in Redis so warm starts survive
// process restarts. The payload is JSON; a user without a subscription record
// is cached as a JSON null to distinguish "known free" from "not cached".
type redisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisCache returns a Cache backed by the given Redis client. The key
// should be scoped per user (e.g. "subscription:<user-id>"). A non-positive
// ttl defaults to one hour.
func NewRedisCache(client *redis.Client, key string, ttl time.Duration) (Cache, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	if key == "" {
		return nil, ErrEmptyCacheKey
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisCache{client: client, key: key, ttl: ttl}, nil
}

func (c *redisCache) Get(ctx context.Context) (*Subscription, bool, error) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read subscription cache: %w", err)
	}

	var sub *Subscription
	if err := json.Unmarshal(payload, &sub); err != nil {
		// Corrupt entries are treated as a miss; the next Set overwrites them.
		return nil, false, nil
	}
	return sub, true, nil
}

func (c *redisCache) Set(ctx context.Context, sub *Subscription) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode subscription cache: %w", err)
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("write subscription cache: %w", err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("delete subscription cache: %w", err)
	}
	return nil
}
