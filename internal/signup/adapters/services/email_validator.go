package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"gosignup/internal/signup/domain/services"
	svc "gosignup/internal/signup/ports/services"
)

const emailRule = "required,email"

// EmailValidatorAdapter проверяет формат email через go-playground/validator.
type EmailValidatorAdapter struct {
	validate *validator.Validate
}

// NewEmailValidator создает валидатор email.
func NewEmailValidator() svc.EmailValidator {
	return &EmailValidatorAdapter{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// IsValid возвращает false для некорректного адреса.
// Ошибка возвращается, только если сам валидатор не смог выполнить проверку.
func (a *EmailValidatorAdapter) IsValid(email string) (bool, error) {
	err := a.validate.Var(email, emailRule)
	if err == nil {
		return true, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", services.ErrEmailValidation, err)
}
