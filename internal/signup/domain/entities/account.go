package entities

import "errors"

// Ошибки домена учетных записей.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("account with this email already exists")
	ErrEmptyAccountID     = errors.New("account ID cannot be empty")
)

// Account - учетная запись в том виде, в каком ее вернул создатель учетных записей.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountInput - проверенные данные для создания учетной записи.
// Подтверждение пароля сюда не попадает.
type AccountInput struct {
	Name     string
	Email    string
	Password string
}
