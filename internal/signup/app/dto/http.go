// Package dto описывает конверт запроса и ответа обработчика регистрации.
package dto

import "gosignup/internal/signup/domain/entities"

// SignupBody - поля формы регистрации. Отсутствующее поле равно пустой строке.
type SignupBody struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// HTTPRequest - входной конверт обработчика.
type HTTPRequest struct {
	Body SignupBody
}

// HTTPResponse - выходной конверт: код статуса и тело.
// Тело - описание ошибки, учетная запись или nil.
type HTTPResponse struct {
	StatusCode int `json:"statusCode"`
	Body       any `json:"body"`
}

// AccountView - публичное представление учетной записи без хэша пароля.
type AccountView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewAccountView строит представление из учетной записи.
func NewAccountView(account *entities.Account) AccountView {
	return AccountView{ID: account.ID, Name: account.Name, Email: account.Email}
}
