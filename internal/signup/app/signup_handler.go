// Package app содержит сценарии сервиса регистрации.
package app

import (
	"context"

	"go.uber.org/zap"

	"gosignup/internal/signup/app/dto"
	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/api"
	"gosignup/internal/signup/ports/services"
	"gosignup/pkg/logger"
)

const (
	methodHandle = "Handle"

	msgMissingParam         = "signup rejected: missing param"
	msgPasswordMismatch     = "signup rejected: password confirmation mismatch"
	msgInvalidEmail         = "signup rejected: invalid email"
	msgEmailValidatorFailed = "email validator failed"
	msgAccountCreateFailed  = "account creation failed"
	msgAccountCreateEmpty   = "account creator returned no account"
	msgCollaboratorPanic    = "signup collaborator panicked"
	msgAccountCreated       = "account created"
)

// Имена полей формы в порядке проверки.
const (
	fieldName                 = "name"
	fieldEmail                = "email"
	fieldPassword             = "password"
	fieldPasswordConfirmation = "passwordConfirmation"
)

// SignupHandler проверяет запрос на регистрацию и передает его создателю учетных записей.
// Обработчик не хранит состояния между вызовами.
type SignupHandler struct {
	emailValidator services.EmailValidator
	accountCreator api.AccountCreator
}

// NewSignupHandler создает обработчик регистрации.
func NewSignupHandler(emailValidator services.EmailValidator, accountCreator api.AccountCreator) *SignupHandler {
	return &SignupHandler{
		emailValidator: emailValidator,
		accountCreator: accountCreator,
	}
}

// Handle всегда возвращает ответ. Первая не пройденная проверка определяет результат:
// обязательные поля, совпадение паролей, формат email, создание учетной записи.
func (h *SignupHandler) Handle(ctx context.Context, req dto.HTTPRequest) (resp dto.HTTPResponse) {
	log := logger.Log(ctx).With(zap.String("method", methodHandle))

	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, msgCollaboratorPanic, zap.Any("panic", r), zap.Stack("stack"))
			resp = serverError()
		}
	}()

	body := req.Body

	if field, missing := firstMissingField(body); missing {
		log.Debug(ctx, msgMissingParam, zap.String("param", field))
		return badRequest(dto.NewMissingParamError(field))
	}

	if body.Password != body.PasswordConfirmation {
		log.Debug(ctx, msgPasswordMismatch)
		return badRequest(dto.NewInvalidParamError(fieldPasswordConfirmation))
	}

	valid, err := h.emailValidator.IsValid(body.Email)
	if err != nil {
		log.Error(ctx, msgEmailValidatorFailed, zap.Error(err))
		return serverError()
	}
	if !valid {
		log.Debug(ctx, msgInvalidEmail)
		return badRequest(dto.NewInvalidParamError(fieldEmail))
	}

	account, err := h.accountCreator.Add(ctx, entities.AccountInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		log.Error(ctx, msgAccountCreateFailed, zap.Error(err))
		return serverError()
	}
	if account == nil {
		log.Error(ctx, msgAccountCreateEmpty)
		return serverError()
	}

	log.Info(ctx, msgAccountCreated, zap.String("account_id", account.ID))
	return ok(account)
}

func firstMissingField(body dto.SignupBody) (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{fieldName, body.Name},
		{fieldEmail, body.Email},
		{fieldPassword, body.Password},
		{fieldPasswordConfirmation, body.PasswordConfirmation},
	}

	for _, f := range required {
		if f.value == "" {
			return f.name, true
		}
	}
	return "", false
}
