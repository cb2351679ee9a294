// Package http содержит HTTP сервер сервиса регистрации на fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gosignup/internal/signup/adapters/http/middleware"
	"gosignup/internal/signup/adapters/http/signup"
	"gosignup/internal/signup/app/dto"
	"gosignup/internal/signup/ports/api"
	"gosignup/pkg/logger"
)

const resourceRoute = "Route"

// SetupRouter регистрирует middleware и маршруты.
func SetupRouter(app *fiber.App, controller signup.Controller, loader api.AccountLoader, deps map[string]Pinger) {
	handler := signup.NewHandler(controller, loader)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", NewHealthHandler(deps))

	apiV1 := app.Group("/api/v1")
	apiV1.Post("/signup", handler.Signup)
	apiV1.Get("/accounts/:id", handler.GetAccount)

	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewNotFoundError(resourceRoute))
	})
}

// ErrorHandler отвечает дескриптором ошибки вместо текста fiber по умолчанию.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		if fe.Code == fiber.StatusNotFound {
			return c.Status(fe.Code).JSON(dto.NewNotFoundError(resourceRoute))
		}
		return c.Status(fe.Code).JSON(dto.ErrorBody{Name: "HTTPError", Message: fe.Message})
	}

	logger.Log(c.Context()).Error(c.Context(), "unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewServerError())
}
