// Package config загружает конфигурацию сервисов из файла и переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"gosignup/pkg/logger"
)

const (
	msgLoadingConfiguration = "loading configuration"
	msgConfigurationLoaded  = "configuration loaded successfully"
	msgEnvFileMissing       = "config file not found, using environment only"

	errCtxLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load заполняет T из файла path (если он есть) и переменных окружения.
// Переменные окружения имеют приоритет над файлом; пустой path означает только окружение.
func Load[T any](ctx context.Context, serviceName, path string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName), zap.String(attrPath, path))
	log.Info(ctx, msgLoadingConfiguration)

	var cfg T

	fromFile := path != ""
	if fromFile {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			log.Debug(ctx, msgEnvFileMissing)
			fromFile = false
		}
	}

	var err error
	if fromFile {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, errCtxLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
