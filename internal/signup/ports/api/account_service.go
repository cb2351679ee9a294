package api

import (
	"context"

	"gosignup/internal/signup/domain/entities"
)

// AccountCreator создает учетную запись из проверенных данных.
type AccountCreator interface {
	Add(ctx context.Context, input entities.AccountInput) (*entities.Account, error)
}

// AccountLoader возвращает ранее созданную учетную запись.
type AccountLoader interface {
	LoadByID(ctx context.Context, id string) (*entities.Account, error)
}
