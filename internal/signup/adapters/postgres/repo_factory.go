// Package postgres содержит репозитории сервиса регистрации поверх pgx.
package postgres

import (
	"gosignup/internal/signup/ports/repositories"
)

// RepositoryFactory создает репозитории для работы с Postgres.
type RepositoryFactory struct {
	accountRepo repositories.AccountRepository
}

// NewRepositoryFactory создает фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		accountRepo: NewAccountRepository(pool),
	}
}

// AccountRepository возвращает репозиторий учетных записей.
func (f *RepositoryFactory) AccountRepository() repositories.AccountRepository {
	return f.accountRepo
}
