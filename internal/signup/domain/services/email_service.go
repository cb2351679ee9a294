package services

import "errors"

// ErrEmailValidation возвращается, когда проверку формата email невозможно выполнить.
var ErrEmailValidation = errors.New("email validation failed")
