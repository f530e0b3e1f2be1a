package gamestate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisHash is the hash that holds game info fields when none is configured.
const DefaultRedisHash = "gameinfo"

// RedisBridge implements Bridge over a Redis hash, for setups where the game
// plugin publishes its state to a Redis instance instead of the game folder.
type RedisBridge struct {
	client *redis.Client
	hash   string
	logger *slog.Logger
}

// Ensure RedisBridge implements Bridge interface
var _ Bridge = (*RedisBridge)(nil)

// NewRedisBridge creates a bridge from a redis:// URL.
func NewRedisBridge(redisURL, hash string, logger *slog.Logger) (*RedisBridge, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if hash == "" {
		hash = DefaultRedisHash
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RedisBridge{
		client: redis.NewClient(opt),
		hash:   hash,
		logger: logger,
	}, nil
}

func (r *RedisBridge) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisBridge) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

func (r *RedisBridge) ReadGameInfo(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	val, err := r.client.HGet(ctx, r.hash, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Redis game info field not found", "hash", r.hash, "key", key)
			return "", nil
		}
		return "", fmt.Errorf("redis hget %s failed: %w", key, err)
	}
	return strings.TrimSpace(val), nil
}

func (r *RedisBridge) WriteGameInfo(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	if err := r.client.HSet(ctx, r.hash, key, value).Err(); err != nil {
		return fmt.Errorf("redis hset %s failed: %w", key, err)
	}

	r.logger.Debug("Redis game info written", "hash", r.hash, "key", key)
	return nil
}
