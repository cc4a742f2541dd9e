package infrastructure

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/architeacher/svc-booking-messaging/internal/config"
)

// KeydbClient wraps the KeyDB (Redis protocol) client.
type KeydbClient struct {
	*redis.Client

	logger Logger
}

func NewKeyDBClient(cfg config.CacheConfig, logger Logger) *KeydbClient {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  cfg.PoolTimeout,
		MaxRetries:   cfg.MaxRetries,
	})

	return &KeydbClient{
		Client: client,
		logger: logger,
	}
}

func (c *KeydbClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping keydb: %w", err)
	}

	return nil
}

func (c *KeydbClient) Close() error {
	if err := c.Client.Close(); err != nil {
		c.logger.Error().Err(err).Msg("failed to close keydb client")

		return fmt.Errorf("failed to close keydb client: %w", err)
	}

	return nil
}
