// Package cache provides the key-value cache client used by the read path.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

const (
	defaultOpTimeout = 2 * time.Second
	defaultTLSPort   = "6379"
)

// RedisCache implements adapter.Cache on top of go-redis.
// A RedisCache with a nil client is disabled: Get always misses and Set is ignored.
type RedisCache struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewRedisCache creates a cache client from the configured credentials.
// Missing or malformed credentials yield a disabled client rather than an error,
// so the application keeps serving reads straight from the store.
func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	if !cfg.Enabled() {
		slog.Warn("Cache disabled, reads go straight to the store",
			"error", domainerror.ErrCacheNotConfigured,
		)
		return &RedisCache{}
	}

	opts, err := redisOptions(cfg)
	if err != nil {
		slog.Warn("Cache disabled, invalid REDIS_URL",
			"error", fmt.Errorf("%w: %w", domainerror.ErrCacheNotConfigured, err),
		)
		return &RedisCache{}
	}

	c := NewRedisCacheFromClient(redis.NewClient(opts))
	if cfg.OpTimeout > 0 {
		c.opTimeout = cfg.OpTimeout
	}
	return c
}

// NewRedisCacheFromClient wraps an existing go-redis client.
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:    client,
		opTimeout: defaultOpTimeout,
	}
}

// redisOptions accepts redis:// and rediss:// URLs as well as the https
// endpoint form handed out by hosted providers, which maps to TLS on 6379.
func redisOptions(cfg config.RedisConfig) (*redis.Options, error) {
	raw := cfg.URL

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "https" || u.Scheme == "http" {
		host := u.Host
		if u.Port() == "" {
			host = net.JoinHostPort(u.Hostname(), defaultTLSPort)
		}
		raw = "rediss://" + host
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, err
	}
	opts.Password = cfg.Token
	return opts, nil
}

// Available reports whether the client was configured.
func (c *RedisCache) Available() bool {
	return c.client != nil
}

// Get returns the value stored under key. Any failure is logged and reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Cache read failed, treating as miss",
				"key", key,
				"error", fmt.Errorf("%w: %w", domainerror.ErrCacheUnavailable, err),
			)
		}
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	slog.Debug("Cache hit", "key", key)
	return data, true
}

// Set stores value under key with the given TTL. It reports whether the write succeeded.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if c.client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("Cache write failed",
			"key", key,
			"error", fmt.Errorf("%w: %w", domainerror.ErrCacheUnavailable, err),
		)
		return false
	}
	return true
}

// Ping checks connectivity to the cache store.
func (c *RedisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return domainerror.ErrCacheNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", domainerror.ErrCacheUnavailable, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

var _ adapter.Cache = (*RedisCache)(nil)
