package redis

import (
	"context"
	"fmt"
	"sync"

	"legaldata-srv/config"
	"legaldata-srv/pkg/redis"
)

var (
	instance redis.IRedis
	mu       sync.Mutex
)

// Connect returns the shared snapshot store client. It returns a nil client
// and no error when Redis is disabled. A failed attempt is not cached.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the shared client, if any.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
