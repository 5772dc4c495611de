package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrBlogNotFound is returned when no blog matches the lookup.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines persistence for blog posts. Read methods populate
// the author's username.
type BlogRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Blog, error)

	// List returns blogs ordered by ID.
	List(ctx context.Context, skip, limit int) ([]*entity.Blog, error)

	// Create persists a new blog and fills in its ID and CreatedAt.
	Create(ctx context.Context, blog *entity.Blog) error

	// Update writes the editable fields and ModifiedAt of an existing blog.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes the blog. Deleting a missing blog returns ErrBlogNotFound.
	Delete(ctx context.Context, id int64) error
}
