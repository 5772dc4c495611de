package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// CreateBlogInput defines the fields of a new post.
type CreateBlogInput struct {
	Title            string
	ChiefDescription string
	Content          string
}

// BlogUsecase defines blog operations. Mutations take the authenticated caller
// and succeed only for the blog's author.
type BlogUsecase interface {
	ListBlogs(ctx context.Context, page PageInput) ([]*entity.Blog, error)
	GetBlog(ctx context.Context, id int64) (*entity.Blog, error)
	CreateBlog(ctx context.Context, caller *entity.User, input *CreateBlogInput) (*entity.Blog, error)

	// UpdateBlog applies patch after checking existence, then ownership.
	UpdateBlog(ctx context.Context, caller *entity.User, id int64, patch entity.BlogPatch) (*entity.Blog, error)

	// DeleteBlog removes the blog after checking existence, then ownership.
	DeleteBlog(ctx context.Context, caller *entity.User, id int64) error
}
