// Package db поднимает базу данных сервиса регистрации: миграции и пул соединений.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gosignup/internal/signup/config"
	"gosignup/pkg/db/postgres"
	"gosignup/pkg/logger"
)

const (
	LogDBInitializing    = "initializing signup database"
	LogDBInitialized     = "signup database initialized successfully"
	LogMigrationStarting = "starting database migrations for signup service"
)

const (
	ErrDBMigrations = "failed to apply signup database migrations"
	ErrDBConnection = "failed to connect to signup database"
	ErrGetPath      = "failed to resolve migrations path"
)

// DB - соединение с базой данных сервиса регистрации.
type DB struct {
	database *postgres.Database
}

// New применяет миграции и открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database))

	migrationsPath, err := MigrationsURL(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)
	return &DB{database: database}, nil
}

// MigrationsURL превращает путь к каталогу миграций в URL источника file://.
func MigrationsURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// Close закрывает пул. Сигнатура подходит для shutdown.Wait.
func (db *DB) Close(ctx context.Context) error {
	return db.database.Close(ctx)
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}
