package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/errors"
	"blog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const blogWithAuthorColumns = "blogs.*, users.username AS author_username"

// blogRepository implements the repository.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (repo *blogRepository) withAuthor(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Select(blogWithAuthorColumns).
		Joins("JOIN users ON users.id = blogs.author_id")
}

// FindByID retrieves a blog and its author's username.
func (repo *blogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	var row model.BlogWithAuthorRow
	if err := repo.withAuthor(ctx).Where("blogs.id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find blog by id")
	}

	return toBlogDomain(&row), nil
}

// List returns a page of blogs ordered by ID.
func (repo *blogRepository) List(ctx context.Context, skip, limit int) ([]*entity.Blog, error) {
	var rows []*model.BlogWithAuthorRow
	if err := repo.withAuthor(ctx).
		Order("blogs.id").
		Offset(skip).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(rows))
	for _, row := range rows {
		blogs = append(blogs, toBlogDomain(row))
	}

	return blogs, nil
}

// Create persists a new blog for blog.AuthorID.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("blog violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt

	return nil
}

// Update writes the editable columns and modified_at. The author never changes.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blog.ID).
		Updates(map[string]any{
			"title":             blog.Title,
			"chief_description": blog.ChiefDescription,
			"content":           blog.Content,
			"modified_at":       blog.ModifiedAt,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("blog violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// Delete removes a blog by ID.
func (repo *blogRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func toBlogDomain(row *model.BlogWithAuthorRow) *entity.Blog {
	if row == nil {
		return nil
	}

	return &entity.Blog{
		ID:               row.ID,
		AuthorID:         row.AuthorID,
		Title:            row.Title,
		ChiefDescription: row.ChiefDescription,
		Content:          row.Content,
		CreatedAt:        row.CreatedAt,
		ModifiedAt:       row.ModifiedAt,
		AuthorUsername:   row.AuthorUsername,
	}
}

func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:               data.ID,
		AuthorID:         data.AuthorID,
		Title:            data.Title,
		ChiefDescription: data.ChiefDescription,
		Content:          data.Content,
		CreatedAt:        data.CreatedAt,
		ModifiedAt:       data.ModifiedAt,
	}
}
