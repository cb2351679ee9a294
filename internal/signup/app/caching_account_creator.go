package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/api"
	"gosignup/internal/signup/ports/cache"
	"gosignup/pkg/logger"
)

const msgCacheWarmFailed = "failed to cache created account"

// CachingAccountCreator кладет только что созданную учетную запись в кэш.
// Ошибка кэша не влияет на результат создания.
type CachingAccountCreator struct {
	next  api.AccountCreator
	cache cache.Cache
	ttl   time.Duration
}

// NewCachingAccountCreator оборачивает next.
func NewCachingAccountCreator(next api.AccountCreator, c cache.Cache, ttl time.Duration) api.AccountCreator {
	return &CachingAccountCreator{next: next, cache: c, ttl: ttl}
}

func (c *CachingAccountCreator) Add(ctx context.Context, input entities.AccountInput) (*entities.Account, error) {
	account, err := c.next.Add(ctx, input)
	if err != nil || account == nil {
		return account, err
	}

	log := logger.Log(ctx).With(zap.String("method", methodAdd), zap.String("account_id", account.ID))

	raw, err := encodeAccount(account)
	if err != nil {
		log.Warn(ctx, msgCacheWarmFailed, zap.Error(err))
		return account, nil
	}
	if err := c.cache.Set(ctx, AccountCacheKey(account.ID), raw, c.ttl); err != nil {
		log.Warn(ctx, msgCacheWarmFailed, zap.Error(err))
	}

	return account, nil
}
