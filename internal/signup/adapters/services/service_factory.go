// Package services содержит реализации сервисов регистрации: хэширование паролей и проверку email.
package services

import (
	svc "gosignup/internal/signup/ports/services"
)

// ServiceFactory создает сервисы, нужные сценариям регистрации.
type ServiceFactory struct {
	passwordHasher svc.PasswordHasher
	emailValidator svc.EmailValidator
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordHasher: NewBcrypt(bcryptCost),
		emailValidator: NewEmailValidator(),
	}
}

func (f *ServiceFactory) PasswordHasher() svc.PasswordHasher {
	return f.passwordHasher
}

func (f *ServiceFactory) EmailValidator() svc.EmailValidator {
	return f.emailValidator
}
