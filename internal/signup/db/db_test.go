package db_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosignup/internal/signup/config"
	"gosignup/internal/signup/db"
)

func TestMigrationsURL(t *testing.T) {
	t.Run("absolute path", func(t *testing.T) {
		dir := t.TempDir()

		got, err := db.MigrationsURL(dir)
		require.NoError(t, err)
		assert.Equal(t, "file://"+filepath.ToSlash(dir), got)
	})

	t.Run("relative path is resolved", func(t *testing.T) {
		got, err := db.MigrationsURL("migrations/signup")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "file:///"))
		assert.True(t, strings.HasSuffix(got, "/migrations/signup"))
	})
}

func TestNewFailsOnMissingMigrations(t *testing.T) {
	cfg := &config.PostgresConfig{
		Host:          "localhost",
		Port:          5432,
		User:          "postgres",
		Password:      "postgres",
		Database:      "signup",
		MinConn:       1,
		MaxConn:       2,
		MigrationsDir: filepath.Join(t.TempDir(), "absent"),
	}

	database, err := db.New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), db.ErrDBMigrations)
	assert.Nil(t, database)
}
