// Package signup содержит HTTP обработчики регистрации и чтения учетных записей.
package signup

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gosignup/internal/signup/app/dto"
	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/api"
	"gosignup/pkg/logger"
)

const (
	fieldBody        = "body"
	resourceAccount  = "Account"
	paramAccountID   = "id"
	errCtxSendResult = "failed to send response"
)

// Controller - обработчик запроса на регистрацию, независимый от транспорта.
type Controller interface {
	Handle(ctx context.Context, req dto.HTTPRequest) dto.HTTPResponse
}

// Handler связывает fiber с обработчиком регистрации и чтением учетных записей.
type Handler struct {
	controller Controller
	loader     api.AccountLoader
}

// NewHandler создает HTTP обработчик.
func NewHandler(controller Controller, loader api.AccountLoader) *Handler {
	return &Handler{controller: controller, loader: loader}
}

// Signup обрабатывает POST /api/v1/signup.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Signup"))

	var body dto.SignupBody
	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().JSON(&body); err != nil {
			log.Debug(requestCtx, "malformed signup body", zap.Error(err))
			return send(ctx, fiber.StatusBadRequest, dto.NewInvalidParamError(fieldBody))
		}
	}

	resp := h.controller.Handle(requestCtx, dto.HTTPRequest{Body: body})
	return send(ctx, resp.StatusCode, resp.Body)
}

// GetAccount обрабатывает GET /api/v1/accounts/:id.
func (h *Handler) GetAccount(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	id := ctx.Params(paramAccountID)
	log := logger.Log(requestCtx).With(zap.String("handler", "GetAccount"), zap.String("account_id", id))

	account, err := h.loader.LoadByID(requestCtx, id)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) || errors.Is(err, entities.ErrEmptyAccountID) {
			return send(ctx, fiber.StatusNotFound, dto.NewNotFoundError(resourceAccount))
		}
		log.Error(requestCtx, "failed to load account", zap.Error(err))
		return send(ctx, fiber.StatusInternalServerError, dto.NewServerError())
	}

	return send(ctx, fiber.StatusOK, dto.NewAccountView(account))
}

func send(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("%s: %w", errCtxSendResult, err)
	}
	return nil
}
