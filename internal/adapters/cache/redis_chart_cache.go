package cache

import (
	"context"
	"errors"
	"fmt"
	"launch-dashboard-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "launchdash:chart:"

// Redis-backed cache for rendered chart images.
// Entries expire after TTL; a zero TTL keeps them until evicted.
type RedisChartCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

func NewRedisChartCache(client *redis.Client, ttl time.Duration) *RedisChartCache {
	return &RedisChartCache{Client: client, TTL: ttl, Prefix: defaultKeyPrefix}
}

// Connect to Redis at addr and verify the connection.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("dial redis %q: %w", addr, err)
	}
	return client, nil
}

// Fetch a cached chart image.
func (c *RedisChartCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "chart.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("chart cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get chart cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, c.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get chart cache key=%q: %w", key, err)
	}

	return b, true, nil
}

// Store a rendered chart image.
func (c *RedisChartCache) Put(ctx context.Context, key string, data []byte) error {
	if c.Client == nil {
		return errors.New("chart cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("put chart cache: key must not be empty")
	}

	if err := c.Client.Set(ctx, c.Prefix+key, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("put chart cache key=%q: %w", key, err)
	}

	return nil
}
