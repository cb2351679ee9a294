package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/api"
	"gosignup/internal/signup/ports/repositories"
	"gosignup/internal/signup/ports/services"
	"gosignup/pkg/logger"
)

const (
	methodAdd = "Add"

	errCtxHashPassword  = "failed to hash password"
	errCtxStoreAccount  = "failed to store account"
	msgEmailTaken       = "email already registered"
	msgAccountPersisted = "account persisted"

	methodFindExisting    = "FindExisting"
	errCtxFindExisting    = "failed to find existing account"
	errCtxVerifyPassword  = "failed to verify password"
	msgExistingMismatched = "stored account belongs to another signup"
)

// DbAddAccount создает учетную запись в хранилище, сохраняя хэш пароля.
type DbAddAccount struct {
	hasher services.PasswordHasher
	repo   repositories.AccountRepository
}

// NewDbAddAccount создает сценарий создания учетной записи.
func NewDbAddAccount(hasher services.PasswordHasher, repo repositories.AccountRepository) api.AccountCreator {
	return &DbAddAccount{
		hasher: hasher,
		repo:   repo,
	}
}

// Add хэширует пароль и сохраняет учетную запись.
// Возвращенная учетная запись содержит хэш, а не исходный пароль.
func (uc *DbAddAccount) Add(ctx context.Context, input entities.AccountInput) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAdd))

	hash, err := uc.hasher.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, errCtxHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashPassword, err)
	}

	account, err := uc.repo.Create(ctx, &entities.Account{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, entities.ErrEmailAlreadyExists) {
			log.Info(ctx, msgEmailTaken)
		} else {
			log.Error(ctx, errCtxStoreAccount, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxStoreAccount, err)
	}

	log.Debug(ctx, msgAccountPersisted, zap.String("account_id", account.ID))
	return account, nil
}

// FindExisting возвращает уже сохраненную учетную запись, если она создана
// из того же input: совпадают имя, email и пароль.
// Иначе возвращает entities.ErrEmailAlreadyExists.
func (uc *DbAddAccount) FindExisting(ctx context.Context, input entities.AccountInput) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFindExisting))

	account, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, entities.ErrAccountNotFound) {
			log.Error(ctx, errCtxFindExisting, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindExisting, err)
	}

	if account.Name != input.Name {
		log.Info(ctx, msgExistingMismatched)
		return nil, entities.ErrEmailAlreadyExists
	}

	ok, err := uc.hasher.Verify(ctx, input.Password, account.Password)
	if err != nil {
		log.Error(ctx, errCtxVerifyPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyPassword, err)
	}
	if !ok {
		log.Info(ctx, msgExistingMismatched)
		return nil, entities.ErrEmailAlreadyExists
	}

	return account, nil
}
