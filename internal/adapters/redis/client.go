package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	redis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/config"
	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// reconnectBackoff is how long a failed dial is remembered before the next attempt
const reconnectBackoff = 10 * time.Second

// Client is a lazily connected Redis cache client.
// The first operation dials; concurrent first callers share one connection.
// After a failed dial, operations fail fast until reconnectBackoff elapses.
type Client struct {
	opts  *redis.Options
	mu    sync.Mutex
	cache *redis.Client

	dialErr    error
	retryAfter time.Time
	backoff    time.Duration
	now        func() time.Time
}

// New creates new Redis client without connecting
func New(cfg *config.RedisConfig) *Client {
	return &Client{
		opts: &redis.Options{
			Addr:         cfg.Addr(),
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		},
		backoff: reconnectBackoff,
		now:     time.Now,
	}
}

// Connect establishes the connection if not already established.
// Safe to call repeatedly and concurrently.
func (c *Client) Connect(ctx context.Context) error {
	_, err := c.conn(ctx)
	return err
}

func (c *Client) conn(ctx context.Context) (*redis.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil {
		return c.cache, nil
	}
	if c.dialErr != nil && c.now().Before(c.retryAfter) {
		return nil, c.dialErr
	}

	client := redis.NewClient(c.opts)

	pingCtx, cancel := context.WithTimeout(ctx, c.opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		if ctx.Err() != nil {
			// caller gave up; says nothing about the server
			return nil, fmt.Errorf("failed to connect to redis cache: %w", err)
		}
		c.dialErr = fmt.Errorf("failed to connect to redis cache: %w", err)
		c.retryAfter = c.now().Add(c.backoff)
		logger.Warn("redis cache unreachable, serving misses",
			zap.String("address", c.opts.Addr),
			zap.Duration("retry_in", c.backoff),
			zap.Error(err),
		)
		return nil, c.dialErr
	}
	c.dialErr = nil

	logger.Info("redis cache client connected",
		zap.String("address", c.opts.Addr),
		zap.Int("db", c.opts.DB),
	)

	c.cache = client
	return client, nil
}

// Disconnect closes the connection; the next operation reconnects
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache == nil {
		return nil
	}

	logger.Info("closing redis cache client")
	err := c.cache.Close()
	c.cache = nil
	if err != nil {
		return fmt.Errorf("failed to close redis cache: %w", err)
	}
	return nil
}

// Close is an alias for Disconnect
func (c *Client) Close() error {
	return c.Disconnect()
}

// Health pings redis, connecting first if needed
func (c *Client) Health(ctx context.Context) error {
	client, err := c.conn(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// Get retrieves value; found is false when the key is missing or expired
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	client, err := c.conn(ctx)
	if err != nil {
		return "", false, err
	}

	val, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set stores value with TTL, overwriting any previous value and expiry
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	client, err := c.conn(ctx)
	if err != nil {
		return err
	}

	if err := client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Del deletes key
func (c *Client) Del(ctx context.Context, key string) error {
	client, err := c.conn(ctx)
	if err != nil {
		return err
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
