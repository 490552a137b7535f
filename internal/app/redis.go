package app

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/middleware"
)

const redisPingTimeout = 5 * time.Second

// IdempotencyComponents holds the store backing Idempotency-Key handling.
type IdempotencyComponents struct {
	Store middleware.IdempotencyStore
	// Redis is nil when the in-memory store is used.
	Redis *redis.Client

	memory *middleware.MemoryIdempotencyStore
}

// InitializeIdempotency connects to Redis when enabled. Without Redis, or if
// it cannot be reached, keys are kept in process memory.
func InitializeIdempotency(cfg config.RedisConfig) *IdempotencyComponents {
	if cfg.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := client.Ping(ctx).Err()
		cancel()
		if err == nil {
			log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
			return &IdempotencyComponents{
				Store: middleware.NewRedisIdempotencyStore(client),
				Redis: client,
			}
		}

		log.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis - using in-memory idempotency store")
		_ = client.Close()
	}

	memory := middleware.NewMemoryIdempotencyStore(time.Minute)
	return &IdempotencyComponents{Store: memory, memory: memory}
}

// Ping checks the Redis connection.
func (i *IdempotencyComponents) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	return i.Redis.Ping(ctx).Err()
}

// Close stops the memory cleanup loop or closes the Redis client.
func (i *IdempotencyComponents) Close() {
	if i == nil {
		return
	}
	if i.memory != nil {
		i.memory.Stop()
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}
