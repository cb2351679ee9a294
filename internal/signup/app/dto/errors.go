package dto

import "encoding/json"

// Имена дескрипторов ошибок в теле ответа.
const (
	NameMissingParamError = "MissingParamError"
	NameInvalidParamError = "InvalidParamError"
	NameServerError       = "ServerError"
	NameNotFoundError     = "NotFoundError"
)

// ErrorBody - сериализованная форма дескриптора ошибки.
type ErrorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// MissingParamError - обязательное поле отсутствует или пустое.
type MissingParamError struct {
	Param string
}

func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

func (e *MissingParamError) Error() string {
	return "Missing param: " + e.Param
}

func (e *MissingParamError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ErrorBody{Name: NameMissingParamError, Message: e.Error()})
}

// InvalidParamError - поле присутствует, но значение не прошло проверку.
type InvalidParamError struct {
	Param string
}

func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

func (e *InvalidParamError) Error() string {
	return "Invalid param: " + e.Param
}

func (e *InvalidParamError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ErrorBody{Name: NameInvalidParamError, Message: e.Error()})
}

// ServerError - непрозрачная внутренняя ошибка. Причина в тело не попадает.
type ServerError struct{}

func NewServerError() *ServerError {
	return &ServerError{}
}

func (e *ServerError) Error() string {
	return "Internal server error"
}

func (e *ServerError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ErrorBody{Name: NameServerError, Message: e.Error()})
}

// NotFoundError - запрошенный ресурс не существует.
type NotFoundError struct {
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ErrorBody{Name: NameNotFoundError, Message: e.Error()})
}
