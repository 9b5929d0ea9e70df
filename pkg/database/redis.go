package database

import (
	"context"
	"fmt"
	"time"

	"account-insights/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the report-cache client. Returns nil when caching is
// disabled so callers can wire the middleware unconditionally.
func InitRedis(config utils.CacheConfig) (*redis.Client, error) {
	if !config.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
