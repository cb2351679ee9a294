package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"gosignup/internal/signup/adapters/http/signup"
	"gosignup/internal/signup/config"
	"gosignup/internal/signup/ports/api"
)

const appName = "signup"

// Server - HTTP сервер сервиса регистрации.
type Server struct {
	app     *fiber.App
	address string
}

// NewServer создает fiber приложение с маршрутами регистрации.
func NewServer(cfg *config.HTTPConfig, controller signup.Controller, loader api.AccountLoader, deps map[string]Pinger) *Server {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: ErrorHandler,
	})

	SetupRouter(app, controller, loader, deps)

	return &Server{app: app, address: cfg.GetAddress()}
}

// Start блокируется до остановки сервера.
func (s *Server) Start() error {
	if err := s.app.Listen(s.address, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}
	return nil
}

// Shutdown останавливает сервер. Сигнатура подходит для shutdown.Wait.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber приложение.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Address() string {
	return s.address
}
