package database

import (
	"context"
	"fmt"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// RedisClient wraps the go-redis client used for counters and the token blacklist
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient connects and pings Redis
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Ping checks the connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Close closes the client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
