package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosignup/internal/signup/resilience"
)

var errTransient = errors.New("transient")

func testRetryConfig(attempts int) resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		BackoffFactor:  2,
	}
}

func TestRetryExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds after transient errors", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", testRetryConfig(3)).Execute(ctx, func() error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops at max attempts", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", testRetryConfig(2)).Execute(ctx, func() error {
			calls++
			return errTransient
		})

		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry canceled context errors", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", testRetryConfig(5)).Execute(ctx, func() error {
			calls++
			return context.Canceled
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("custom ShouldRetry", func(t *testing.T) {
		cfg := testRetryConfig(5)
		cfg.ShouldRetry = func(error) bool { return false }

		calls := 0
		err := resilience.NewRetry("test", cfg).Execute(ctx, func() error {
			calls++
			return errTransient
		})

		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})

	t.Run("context canceled during backoff", func(t *testing.T) {
		cfg := testRetryConfig(5)
		cfg.InitialBackoff = time.Hour
		cfg.MaxBackoff = time.Hour

		cctx, cancel := context.WithCancel(ctx)
		err := resilience.NewRetry("test", cfg).Execute(cctx, func() error {
			cancel()
			return errTransient
		})

		require.ErrorIs(t, err, resilience.ErrContextCanceled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("zero attempts still calls once", func(t *testing.T) {
		calls := 0
		_ = resilience.NewRetry("test", resilience.RetryConfig{}).Execute(ctx, func() error {
			calls++
			return errTransient
		})
		assert.Equal(t, 1, calls)
	})
}

func TestExecuteTyped(t *testing.T) {
	r := resilience.NewServiceResilience("test", resilience.DefaultCircuitBreakerConfig(), testRetryConfig(2))

	res, err := resilience.Execute(context.Background(), r, "op", func(context.Context) (string, error) {
		return "value", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "value", res)

	res, err = resilience.Execute(context.Background(), r, "op", func(context.Context) (string, error) {
		return "partial", errTransient
	})
	require.ErrorIs(t, err, errTransient)
	assert.Empty(t, res)
	assert.Equal(t, resilience.StateClosed, r.State())
}
