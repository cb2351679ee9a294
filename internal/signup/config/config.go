// Package config содержит конфигурацию сервиса регистрации.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "gosignup/pkg/config"
	"gosignup/pkg/logger"
)

const (
	serviceName = "signup"

	// EnvConfigPath - переменная с путем к необязательному .env файлу.
	EnvConfigPath     = "SIGNUP_CONFIG_PATH"
	defaultConfigPath = "deploy/signup.env"

	ErrFailedLoadConfig = "failed to load signup configuration"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Security   SecurityConfig   `yaml:"security"`
	Resilience ResilienceConfig `yaml:"resilience"`
}

// Load читает конфигурацию из файла path (если он существует) и окружения.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := pkgconfig.Load[Config](ctx, serviceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, "signup configuration",
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
