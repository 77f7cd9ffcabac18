package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/honeycarbs/career-navigator/pkg/hh"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

const keyPrefix = "navigator:employer-id:"

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// ResolutionCache stores resolved employer ids keyed by normalized name
type ResolutionCache struct {
	client goredis.Cmdable
	ttl    time.Duration
	logger *logging.Logger
}

var _ hh.ResolutionCache = (*ResolutionCache)(nil)

// NewResolutionCache wraps client; ttl <= 0 keeps entries forever
func NewResolutionCache(client goredis.Cmdable, ttl time.Duration, logger *logging.Logger) *ResolutionCache {
	if ttl < 0 {
		ttl = 0
	}
	return &ResolutionCache{client: client, ttl: ttl, logger: logging.OrNop(logger)}
}

func (c *ResolutionCache) Get(ctx context.Context, name string) (string, bool) {
	id, err := c.client.Get(ctx, cacheKey(name)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Warn("resolution cache read failed", "name", name, "err", err)
		return "", false
	}
	return id, id != ""
}

func (c *ResolutionCache) Set(ctx context.Context, name, id string) {
	if err := c.client.Set(ctx, cacheKey(name), id, c.ttl).Err(); err != nil {
		c.logger.Warn("resolution cache write failed", "name", name, "err", err)
	}
}

func cacheKey(name string) string {
	return keyPrefix + strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
