package resilience

import (
	"context"

	"go.uber.org/zap"

	"gosignup/pkg/logger"
)

// ServiceResilience объединяет Circuit Breaker и повторные попытки.
// Повторы выполняются внутри одного разрешения Circuit Breaker.
type ServiceResilience struct {
	serviceName    string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewServiceResilience создает обертку с заданными настройками.
func NewServiceResilience(serviceName string, cbConfig CircuitBreakerConfig, retryConfig RetryConfig) *ServiceResilience {
	return &ServiceResilience{
		serviceName:    serviceName,
		circuitBreaker: NewCircuitBreaker(serviceName, cbConfig),
		retry:          NewRetry(serviceName, retryConfig),
	}
}

// Do выполняет operation под защитой Circuit Breaker и с повторами.
func (r *ServiceResilience) Do(ctx context.Context, operationName string, operation func(context.Context) error) error {
	logger.Log(ctx).Debug(ctx, "executing operation with resilience",
		zap.String("service", r.serviceName),
		zap.String("operation", operationName))

	return r.circuitBreaker.Execute(ctx, func() error {
		return r.retry.Execute(ctx, func() error {
			return operation(ctx)
		})
	})
}

// State возвращает состояние Circuit Breaker.
func (r *ServiceResilience) State() CircuitState {
	return r.circuitBreaker.State()
}

// Execute - типизированный вариант Do, возвращающий результат операции.
func Execute[T any](ctx context.Context, r *ServiceResilience, operationName string, operation func(context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, operationName, func(ctx context.Context) error {
		res, err := operation(ctx)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
