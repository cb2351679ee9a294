package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gosignup/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger - зависимость, доступность которой проверяет /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler отвечает 200, если все зависимости доступны, иначе 503.
func NewHealthHandler(deps map[string]Pinger) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, cancel := context.WithTimeout(ctx.Context(), healthCheckTimeout)
		defer cancel()

		for name, dep := range deps {
			if err := dep.Ping(requestCtx); err != nil {
				logger.Log(requestCtx).Warn(requestCtx, "dependency unavailable",
					zap.String("dependency", name), zap.Error(err))
				return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}

		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	}
}
