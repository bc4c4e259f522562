package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bettyia/clinic-scheduler/internal/config"
)

const defaultTTL = 5 * time.Minute

// Cache is a read-through cache over redis. With no REDIS_URL configured
// every method is a no-op, so handlers never have to care whether redis
// is around.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg *config.Config) *Cache {
	if cfg.RedisURL == "" {
		return &Cache{ttl: defaultTTL}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without cache: %v", err)
		return &Cache{ttl: defaultTTL}
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: defaultTTL,
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del: %v", err)
	}
}
