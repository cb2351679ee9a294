package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/api"
	"gosignup/internal/signup/ports/cache"
	"gosignup/internal/signup/ports/repositories"
	"gosignup/pkg/logger"
)

const (
	methodLoadByID = "LoadByID"

	msgCacheHit         = "account served from cache"
	msgCacheReadFailed  = "failed to read account from cache"
	msgCacheCorrupted   = "cached account is corrupted"
	msgCacheWriteFailed = "failed to write account to cache"
	msgCacheEvictFailed = "failed to evict corrupted account from cache"

	errCtxLoadAccount = "failed to load account"
)

// CachedAccountLoader читает учетные записи из кэша, а при промахе из хранилища.
type CachedAccountLoader struct {
	repo  repositories.AccountRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedAccountLoader создает сценарий чтения учетной записи.
func NewCachedAccountLoader(repo repositories.AccountRepository, c cache.Cache, ttl time.Duration) api.AccountLoader {
	return &CachedAccountLoader{repo: repo, cache: c, ttl: ttl}
}

// LoadByID возвращает entities.ErrAccountNotFound, если учетной записи нет.
func (l *CachedAccountLoader) LoadByID(ctx context.Context, id string) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLoadByID), zap.String("account_id", id))

	if id == "" {
		return nil, entities.ErrEmptyAccountID
	}

	key := AccountCacheKey(id)

	raw, err := l.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
	case raw != "":
		account, decodeErr := decodeAccount(raw)
		if decodeErr == nil {
			log.Debug(ctx, msgCacheHit)
			return account, nil
		}
		log.Warn(ctx, msgCacheCorrupted, zap.Error(decodeErr))
		if err := l.cache.Delete(ctx, key); err != nil {
			log.Warn(ctx, msgCacheEvictFailed, zap.Error(err))
		}
	}

	account, err := l.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			return nil, err
		}
		log.Error(ctx, errCtxLoadAccount, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLoadAccount, err)
	}

	if encoded, err := encodeAccount(account); err == nil {
		if err := l.cache.Set(ctx, key, encoded, l.ttl); err != nil {
			log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
		}
	}

	return account, nil
}
