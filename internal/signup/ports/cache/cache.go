// Package cache определяет интерфейс кэша.
package cache

import (
	"context"
	"time"
)

// Cache - строковый кэш с TTL. Get возвращает пустую строку, если ключа нет.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}
