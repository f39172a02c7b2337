package db

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"fitfx-backend-go/internal/config"
)

// NewRedisClient connects to Redis using the application configuration and
// verifies the connection with a ping.
func NewRedisClient(ctx context.Context, appConfig *config.Config) (*redis.Client, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("NewRedisClient: appConfig cannot be nil")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     appConfig.RedisAddr,
		Password: appConfig.RedisPassword,
		DB:       appConfig.RedisDB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", appConfig.RedisAddr, err)
	}
	return rdb, nil
}
