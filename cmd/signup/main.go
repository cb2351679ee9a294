package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"gosignup/internal/signup/adapters/cache"
	httpServer "gosignup/internal/signup/adapters/http"
	"gosignup/internal/signup/adapters/postgres"
	"gosignup/internal/signup/adapters/services"
	"gosignup/internal/signup/app"
	"gosignup/internal/signup/config"
	"gosignup/internal/signup/db"
	pkgredis "gosignup/pkg/db/redis"
	"gosignup/pkg/logger"
	"gosignup/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "SIGNUP_LOGGER_MODE"
	EnvLoggerLevel = "SIGNUP_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "signup service started"
	LogServiceShutdownDone = "signup service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingRedis        = "closing Redis connection"
	LogClosingDatabase     = "closing database connection"
)

func main() {
	env := logger.ParseEnvironment(os.Getenv(EnvLoggerMode))

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, os.Getenv(config.EnvConfigPath))
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		redisClient, err := pkgredis.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			if closeErr := database.Close(ctx); closeErr != nil {
				log.Error(ctx, LogClosingDatabase, zap.Error(closeErr))
			}
			exitCode = 1
			return
		}
		accountCache := cache.NewRedisCache(redisClient, cfg.Redis.AccountTTL)

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.Security.BCryptCost)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		accountRepo := repoFactory.AccountRepository()

		accountCreator := app.NewCachingAccountCreator(
			app.NewResilientAccountCreator(
				app.NewDbAddAccount(serviceFactory.PasswordHasher(), accountRepo),
				cfg.Resilience.CircuitBreakerConfig(),
				cfg.Resilience.RetryConfig(),
			),
			accountCache,
			cfg.Redis.AccountTTL,
		)
		signupHandler := app.NewSignupHandler(serviceFactory.EmailValidator(), accountCreator)
		accountLoader := app.NewCachedAccountLoader(accountRepo, accountCache, cfg.Redis.AccountTTL)

		log.Info(ctx, LogInitHTTPServer)
		server := httpServer.NewServer(&cfg.HTTP, signupHandler, accountLoader, map[string]httpServer.Pinger{
			"postgres": database,
			"redis":    redisClient,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", server.Address()))
		go func() {
			if err := server.Start(); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
				if sigErr := shutdown.Signal(); sigErr != nil {
					log.Error(ctx, ErrStartHTTPServer, zap.Error(sigErr))
				}
			}
		}()

		// Хранилища закрываются только после того, как HTTP сервер перестал принимать запросы.
		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				if err := server.Shutdown(ctx); err != nil {
					log.Error(ctx, LogStoppingHTTP, zap.Error(err))
				}

				log.Info(ctx, LogClosingRedis)
				redisErr := redisClient.Close(ctx)

				log.Info(ctx, LogClosingDatabase)
				dbErr := database.Close(ctx)

				return errors.Join(redisErr, dbErr)
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
