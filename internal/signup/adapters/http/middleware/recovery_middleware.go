package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gosignup/internal/signup/app/dto"
	"gosignup/pkg/logger"
)

// NewRecoveryMiddleware перехватывает панику обработчика и отвечает 500 ServerError.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				log := logger.Log(requestCtx)
				log.Error(requestCtx, "server panic",
					zap.String("panic", fmt.Sprintf("%v", r)),
					zap.Stack("stack"))

				err = ctx.Status(fiber.StatusInternalServerError).JSON(dto.NewServerError())
			}
		}()

		return ctx.Next()
	}
}
