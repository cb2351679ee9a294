package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/repositories"
	"gosignup/pkg/logger"
)

// uniqueViolation - код ошибки Postgres для нарушения уникального индекса.
const uniqueViolation = "23505"

const (
	queryCreateAccount = `
        INSERT INTO accounts (name, email, password)
        VALUES ($1, $2, $3)
        RETURNING id, name, email, password
    `
	queryFindAccountByID = `
        SELECT id, name, email, password
        FROM accounts
        WHERE id = $1
    `
	queryFindAccountByEmail = `
        SELECT id, name, email, password
        FROM accounts
        WHERE email = $1
    `
)

// PgxPoolInterface - подмножество pgxpool.Pool, нужное репозиторию.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// AccountRepository реализует repositories.AccountRepository для Postgres.
type AccountRepository struct {
	pool PgxPoolInterface
}

// NewAccountRepository создает репозиторий учетных записей.
func NewAccountRepository(pool PgxPoolInterface) repositories.AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create сохраняет учетную запись. Повторный email дает entities.ErrEmailAlreadyExists.
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", "account"), zap.String("method", "Create"))

	var created entities.Account
	err := r.pool.QueryRow(ctx, queryCreateAccount,
		account.Name,
		account.Email,
		account.Password,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Password,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			log.Debug(ctx, "email already exists")
			return nil, entities.ErrEmailAlreadyExists
		}
		log.Error(ctx, "error creating account", zap.Error(err))
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return &created, nil
}

// FindByID находит учетную запись по ID.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entities.Account, error) {
	return r.findOne(ctx, "FindByID", queryFindAccountByID, id)
}

// FindByEmail находит учетную запись по email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return r.findOne(ctx, "FindByEmail", queryFindAccountByEmail, email)
}

func (r *AccountRepository) findOne(ctx context.Context, method, query string, arg string) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", "account"), zap.String("method", method))

	var account entities.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "account not found")
			return nil, entities.ErrAccountNotFound
		}
		var pgErr *pgconn.PgError
		// 22P02: строка не является корректным uuid.
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return nil, entities.ErrAccountNotFound
		}
		log.Error(ctx, "error querying account", zap.Error(err))
		return nil, fmt.Errorf("error querying account (%s): %w", method, err)
	}

	return &account, nil
}
