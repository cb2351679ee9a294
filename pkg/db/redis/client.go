// Package redis предоставляет общий клиент Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gosignup/pkg/logger"
)

const (
	msgConnecting = "connecting to Redis"
	msgConnected  = "successfully connected to Redis"
	msgClosing    = "closing Redis connection"

	errCtxConnect = "failed to connect to Redis"
)

// Client обертывает go-redis и предоставляет базовые операции.
type Client struct {
	client *redis.Client
}

// NewClient создает клиент и проверяет соединение командой PING.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	log := logger.Log(ctx).With(zap.String("addr", cfg.Addr()))
	log.Info(ctx, msgConnecting)

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		log.Error(ctx, errCtxConnect, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxConnect, err)
	}

	log.Info(ctx, msgConnected)
	return &Client{client: rdb}, nil
}

// Get получает значение по ключу. Отсутствие ключа возвращается как redis.Nil.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// Set устанавливает значение с указанным TTL.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение. Сигнатура подходит для shutdown.Wait.
func (c *Client) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, msgClosing)
	return c.client.Close()
}
