// Package middleware содержит промежуточное ПО HTTP сервера регистрации.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"gosignup/pkg/logger"
)

// NewRequestIDMiddleware берет X-Request-ID из запроса или генерирует новый,
// если заголовка нет или он не проходит logger.IsValidRequestID.
// Идентификатор кладется в контекст запроса и возвращается в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(logger.HeaderRequestID)
		if !logger.IsValidRequestID(requestID) {
			requestID = logger.GenerateRequestID()
		}

		ctx.SetContext(logger.NewRequestIDContext(ctx.Context(), requestID))
		ctx.Set(logger.HeaderRequestID, requestID)

		return ctx.Next()
	}
}
