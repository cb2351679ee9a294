package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosignup/internal/signup/adapters/postgres"
	"gosignup/internal/signup/domain/entities"
	"gosignup/internal/signup/ports/repositories"
)

var accountColumns = []string{"id", "name", "email", "password"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepositoryFactory(t *testing.T) {
	factory := postgres.NewRepositoryFactory(newMockPool(t))

	require.NotNil(t, factory)
	assert.Implements(t, (*repositories.AccountRepository)(nil), factory.AccountRepository())
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	input := &entities.Account{Name: "any_name", Email: "any_email@mail.com", Password: "hashed_password"}

	tests := []struct {
		name        string
		setupMock   func(mock pgxmock.PgxPoolIface)
		expectedRes *entities.Account
		expectedErr error
	}{
		{
			name: "успешное создание",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO accounts .+").
					WithArgs("any_name", "any_email@mail.com", "hashed_password").
					WillReturnRows(pgxmock.NewRows(accountColumns).
						AddRow("valid_id", "any_name", "any_email@mail.com", "hashed_password"))
			},
			expectedRes: &entities.Account{
				ID:       "valid_id",
				Name:     "any_name",
				Email:    "any_email@mail.com",
				Password: "hashed_password",
			},
		},
		{
			name: "email уже существует",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO accounts .+").
					WithArgs("any_name", "any_email@mail.com", "hashed_password").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})
			},
			expectedErr: entities.ErrEmailAlreadyExists,
		},
		{
			name: "ошибка базы данных",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO accounts .+").
					WithArgs("any_name", "any_email@mail.com", "hashed_password").
					WillReturnError(errors.New("connection reset"))
			},
			expectedErr: errors.New("error creating account: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.setupMock(mock)

			res, err := postgres.NewAccountRepository(mock).Create(ctx, input)

			switch {
			case tt.expectedErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			case errors.Is(tt.expectedErr, entities.ErrEmailAlreadyExists):
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			default:
				require.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, res)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT id, name, email, password FROM accounts WHERE id = .+").
			WithArgs("valid_id").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("valid_id", "valid_name", "valid_email@email.com", "valid_password"))

		res, err := postgres.NewAccountRepository(mock).FindByID(ctx, "valid_id")

		require.NoError(t, err)
		assert.Equal(t, &entities.Account{
			ID:       "valid_id",
			Name:     "valid_name",
			Email:    "valid_email@email.com",
			Password: "valid_password",
		}, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM accounts WHERE id = .+").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		res, err := postgres.NewAccountRepository(mock).FindByID(ctx, "missing")

		require.ErrorIs(t, err, entities.ErrAccountNotFound)
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed uuid", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM accounts WHERE id = .+").
			WithArgs("not-a-uuid").
			WillReturnError(&pgconn.PgError{Code: "22P02"})

		_, err := postgres.NewAccountRepository(mock).FindByID(ctx, "not-a-uuid")

		require.ErrorIs(t, err, entities.ErrAccountNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM accounts WHERE id = .+").
			WithArgs("valid_id").
			WillReturnError(errors.New("timeout"))

		_, err := postgres.NewAccountRepository(mock).FindByID(ctx, "valid_id")

		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrAccountNotFound)
	})
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	mock := newMockPool(t)
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE email = .+").
		WithArgs("valid_email@email.com").
		WillReturnRows(pgxmock.NewRows(accountColumns).
			AddRow("valid_id", "valid_name", "valid_email@email.com", "valid_password"))
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE email = .+").
		WithArgs("nobody@email.com").
		WillReturnError(pgx.ErrNoRows)

	repo := postgres.NewAccountRepository(mock)

	res, err := repo.FindByEmail(ctx, "valid_email@email.com")
	require.NoError(t, err)
	assert.Equal(t, "valid_id", res.ID)

	_, err = repo.FindByEmail(ctx, "nobody@email.com")
	require.ErrorIs(t, err, entities.ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
