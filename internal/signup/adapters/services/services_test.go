package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gosignup/internal/signup/adapters/services"
	domainservices "gosignup/internal/signup/domain/services"
)

func TestBcryptHash(t *testing.T) {
	ctx := context.Background()
	hasher := services.NewBcrypt(bcrypt.MinCost)

	t.Run("hash matches password", func(t *testing.T) {
		hash, err := hasher.Hash(ctx, "any_password")
		require.NoError(t, err)
		assert.NotEqual(t, "any_password", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("any_password")))
	})

	t.Run("same password yields different hashes", func(t *testing.T) {
		h1, err := hasher.Hash(ctx, "any_password")
		require.NoError(t, err)
		h2, err := hasher.Hash(ctx, "any_password")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := hasher.Hash(ctx, "")
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})

	t.Run("password longer than 72 bytes", func(t *testing.T) {
		_, err := hasher.Hash(ctx, strings.Repeat("a", 73))
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})

	t.Run("invalid cost falls back to default", func(t *testing.T) {
		hash, err := services.NewBcrypt(1).Hash(ctx, "pw")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestBcryptVerify(t *testing.T) {
	ctx := context.Background()
	hasher := services.NewBcrypt(bcrypt.MinCost)

	hash, err := hasher.Hash(ctx, "any_password")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		ok, err := hasher.Verify(ctx, "any_password", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := hasher.Verify(ctx, "other_password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := hasher.Verify(ctx, "", hash)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)

		_, err = hasher.Verify(ctx, "any_password", "")
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})

	t.Run("malformed hash", func(t *testing.T) {
		ok, err := hasher.Verify(ctx, "any_password", "not-a-hash")
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestEmailValidator(t *testing.T) {
	v := services.NewEmailValidator()

	tests := []struct {
		email string
		valid bool
	}{
		{"any_email@mail.com", true},
		{"valid_email@email.com", true},
		{"first.last+tag@sub.example.org", true},
		{"invalid_email", false},
		{"missing-at.example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
		{"two@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			ok, err := v.IsValid(tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestServiceFactory(t *testing.T) {
	f := services.NewServiceFactory(bcrypt.MinCost)

	assert.NotNil(t, f.PasswordHasher())
	assert.NotNil(t, f.EmailValidator())
}
