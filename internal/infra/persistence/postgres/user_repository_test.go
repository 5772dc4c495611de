package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "email", "avatar_url", "password_hash", "created_at", "last_login"}

func TestUserRepository_FindByUsername(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(7), "alice", "alice@example.com", "", "$2a$hash", createdAt, nil))

		user, err := repo.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$hash", user.PasswordHash)
		assert.Nil(t, user.LastLogin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.FindByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.FindByUsername(context.Background(), "alice")
		var dbErr *domainerrors.DatabaseExecuteError
		assert.ErrorAs(t, err, &dbErr)
	})
}

func TestUserRepository_FindByEmailAndID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(7), "alice", "alice@example.com", "", "h", time.Now(), nil))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "alice", "a@example.com", "", "h", time.Now(), nil).
			AddRow(int64(2), "bob", "b@example.com", "", "h", time.Now(), nil))

	users, err := repo.List(context.Background(), 0, 50)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("assigns generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		user := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.Equal(t, int64(42), user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "duplicate email",
			dbErr:   &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUsersEmail},
			wantErr: domainerrors.ErrEmailAlreadyRegistered,
		},
		{
			name:    "duplicate username",
			dbErr:   &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUsersUsername},
			wantErr: domainerrors.ErrUsernameAlreadyRegistered,
		},
		{
			name:    "duplicate on unknown constraint",
			dbErr:   &pgconn.PgError{Code: pgUniqueViolation},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:    "not null violation",
			dbErr:   &pgconn.PgError{Code: pgNotNullViolation},
			wantErr: domainerrors.ErrUserCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(tt.dbErr)

			err := repo.Create(context.Background(), &entity.User{Username: "alice", Email: "alice@example.com"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("updates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET "last_login"=\$1 WHERE id = \$2`).
			WithArgs(at, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateLastLogin(context.Background(), 7, at))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET "last_login"=\$1 WHERE id = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateLastLogin(context.Background(), 7, at), repository.ErrUserNotFound)
	})
}
