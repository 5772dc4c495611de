package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"blog/internal/infra/persistence/postgres/migrations"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.Contains(t, names, "00001_create_users.sql")
	assert.Contains(t, names, "00002_create_blogs.sql")
}

func TestMigrate(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	t.Run("runs embedded migrations from the root", func(t *testing.T) {
		gooseUpContext = func(_ context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			assert.Same(t, sqlDB, db)
			assert.Equal(t, ".", dir)
			assert.Empty(t, opts)

			return nil
		}

		assert.NoError(t, Migrate(context.Background(), sqlDB))
	})

	t.Run("propagates failure", func(t *testing.T) {
		gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
			return errors.New("boom")
		}

		err := Migrate(context.Background(), sqlDB)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
