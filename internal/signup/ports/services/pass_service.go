package services

import "context"

// PasswordHasher превращает пароль в хэш для хранения и сверяет пароль с хэшем.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
