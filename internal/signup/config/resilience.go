package config

import (
	"time"

	"gosignup/internal/signup/resilience"
)

// ResilienceConfig содержит настройки повторов и Circuit Breaker для хранилища.
type ResilienceConfig struct {
	RetryAttempts       int           `yaml:"retry_attempts" env:"SIGNUP_RETRY_ATTEMPTS" env-default:"3"`
	RetryInitialBackoff time.Duration `yaml:"retry_initial_backoff" env:"SIGNUP_RETRY_INITIAL_BACKOFF" env-default:"100ms"`
	RetryMaxBackoff     time.Duration `yaml:"retry_max_backoff" env:"SIGNUP_RETRY_MAX_BACKOFF" env-default:"1s"`
	BreakerErrors       int           `yaml:"breaker_errors" env:"SIGNUP_BREAKER_ERROR_THRESHOLD" env-default:"5"`
	BreakerSuccesses    int           `yaml:"breaker_successes" env:"SIGNUP_BREAKER_SUCCESS_THRESHOLD" env-default:"2"`
	BreakerTimeout      time.Duration `yaml:"breaker_timeout" env:"SIGNUP_BREAKER_TIMEOUT" env-default:"10s"`
}

// RetryConfig возвращает настройки повторов.
func (r *ResilienceConfig) RetryConfig() resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.MaxAttempts = r.RetryAttempts
	cfg.InitialBackoff = r.RetryInitialBackoff
	cfg.MaxBackoff = r.RetryMaxBackoff
	return cfg
}

// CircuitBreakerConfig возвращает настройки Circuit Breaker.
func (r *ResilienceConfig) CircuitBreakerConfig() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		ErrorThreshold:   r.BreakerErrors,
		Timeout:          r.BreakerTimeout,
		SuccessThreshold: r.BreakerSuccesses,
	}
}
