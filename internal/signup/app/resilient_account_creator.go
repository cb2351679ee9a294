package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/domain/services"
	"gosignup/internal/signup/ports/api"
	"gosignup/internal/signup/resilience"
	"gosignup/pkg/logger"
)

const (
	operationAddAccount = "add_account"

	msgRetryFoundExisting = "account committed by an earlier attempt"
	msgRetryFindFailed    = "failed to reconcile duplicate after retry"
)

// existingAccountFinder находит учетную запись, сохраненную предыдущей попыткой Add.
type existingAccountFinder interface {
	FindExisting(ctx context.Context, input entities.AccountInput) (*entities.Account, error)
}

// ResilientAccountCreator повторяет временные сбои создания и размыкает цепь при серии отказов.
type ResilientAccountCreator struct {
	next       api.AccountCreator
	resilience *resilience.ServiceResilience
}

// NewResilientAccountCreator оборачивает next. Настройки ShouldRetry и IsFailure
// перекрываются: ошибки данных не повторяются и не считаются отказом хранилища.
func NewResilientAccountCreator(next api.AccountCreator, cbConfig resilience.CircuitBreakerConfig, retryConfig resilience.RetryConfig) api.AccountCreator {
	retryConfig.ShouldRetry = shouldRetryAdd
	cbConfig.IsFailure = isStorageFailure

	return &ResilientAccountCreator{
		next:       next,
		resilience: resilience.NewServiceResilience("account_creator", cbConfig, retryConfig),
	}
}

// Add повторяет c.next.Add при временных сбоях. Если повторная попытка упирается
// в занятый email, а next умеет искать сохраненную запись, возвращается запись,
// созданная одной из предыдущих попыток.
func (c *ResilientAccountCreator) Add(ctx context.Context, input entities.AccountInput) (*entities.Account, error) {
	attempt := 0

	return resilience.Execute(ctx, c.resilience, operationAddAccount, func(ctx context.Context) (*entities.Account, error) {
		attempt++

		account, err := c.next.Add(ctx, input)
		if err == nil || attempt == 1 || !errors.Is(err, entities.ErrEmailAlreadyExists) {
			return account, err
		}

		return c.findCommitted(ctx, input, err)
	})
}

func (c *ResilientAccountCreator) findCommitted(ctx context.Context, input entities.AccountInput, dupErr error) (*entities.Account, error) {
	finder, ok := c.next.(existingAccountFinder)
	if !ok {
		return nil, dupErr
	}

	log := logger.Log(ctx).With(zap.String("method", methodAdd))

	account, err := finder.FindExisting(ctx, input)
	if err != nil {
		log.Warn(ctx, msgRetryFindFailed, zap.Error(err))
		return nil, dupErr
	}

	log.Info(ctx, msgRetryFoundExisting, zap.String("account_id", account.ID))
	return account, nil
}

func shouldRetryAdd(err error) bool {
	return resilience.DefaultShouldRetry(err) && isStorageFailure(err)
}

func isStorageFailure(err error) bool {
	return !errors.Is(err, entities.ErrEmailAlreadyExists) &&
		!errors.Is(err, services.ErrInvalidPassword) &&
		!errors.Is(err, context.Canceled)
}
