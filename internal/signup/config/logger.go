package config

import (
	"gosignup/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"SIGNUP_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"SIGNUP_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment переводит режим в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	return logger.ParseEnvironment(l.Mode)
}
