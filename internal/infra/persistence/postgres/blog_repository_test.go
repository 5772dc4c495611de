package postgres

import (
	"context"
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

var blogColumns = []string{"id", "author_id", "title", "chief_description", "content", "created_at", "modified_at", "author_username"}

const selectBlogWithAuthor = `SELECT blogs\.\*, users\.username AS author_username FROM "blogs" JOIN users ON users\.id = blogs\.author_id`

func TestBlogRepository_FindByID(t *testing.T) {
	t.Run("joins author username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectQuery(selectBlogWithAuthor + ` WHERE blogs\.id = \$1`).
			WillReturnRows(sqlmock.NewRows(blogColumns).
				AddRow(int64(5), int64(7), "Title", "Short", "Body", time.Now(), nil, "alice"))

		blog, err := repo.FindByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), blog.ID)
		assert.Equal(t, int64(7), blog.AuthorID)
		assert.Equal(t, "alice", blog.AuthorUsername)
		assert.Nil(t, blog.ModifiedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectQuery(selectBlogWithAuthor).WillReturnRows(sqlmock.NewRows(blogColumns))

		_, err := repo.FindByID(context.Background(), 5)
		assert.ErrorIs(t, err, repository.ErrBlogNotFound)
	})
}

func TestBlogRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	modified := time.Now()
	mock.ExpectQuery(selectBlogWithAuthor + ` ORDER BY blogs\.id`).
		WillReturnRows(sqlmock.NewRows(blogColumns).
			AddRow(int64(1), int64(7), "First", "d", "c", time.Now(), nil, "alice").
			AddRow(int64(2), int64(8), "Second", "d", "c", time.Now(), modified, "bob"))

	blogs, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "bob", blogs[1].AuthorUsername)
	assert.NotNil(t, blogs[1].ModifiedAt)
}

func TestBlogRepository_Create(t *testing.T) {
	t.Run("assigns generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectQuery(`INSERT INTO "blogs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

		blog := &entity.Blog{AuthorID: 7, Title: "T", ChiefDescription: "D", Content: "C"}
		require.NoError(t, repo.Create(context.Background(), blog))
		assert.Equal(t, int64(11), blog.ID)
	})

	t.Run("unknown author", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectQuery(`INSERT INTO "blogs"`).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := repo.Create(context.Background(), &entity.Blog{AuthorID: 99, Title: "T"})
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestBlogRepository_Update(t *testing.T) {
	modified := time.Now()
	blog := &entity.Blog{ID: 5, AuthorID: 7, Title: "New", ChiefDescription: "D", Content: "C", ModifiedAt: &modified}

	t.Run("updates editable columns", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectExec(`UPDATE "blogs" SET .*"title"=.* WHERE id = \$\d`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), blog))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing blog", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectExec(`UPDATE "blogs"`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), blog), repository.ErrBlogNotFound)
	})

	t.Run("constraint violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectExec(`UPDATE "blogs"`).WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

		assert.ErrorIs(t, repo.Update(context.Background(), blog), domainerrors.ErrValidationFailed)
	})
}

func TestBlogRepository_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectExec(`DELETE FROM "blogs" WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 5))
	})

	t.Run("missing blog", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBlogRepository(db)

		mock.ExpectExec(`DELETE FROM "blogs"`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 5), repository.ErrBlogNotFound)
	})
}
