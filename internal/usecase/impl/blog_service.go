package impl

import (
	"context"
	"log/slog"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/policy"
	"blog/internal/domain/repository"
	"blog/internal/errors"
	"blog/internal/usecase"

	"go.uber.org/fx"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	blogRepo  repository.BlogRepository
	pages     pageLimits
	logger    *slog.Logger
	now       func() time.Time
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlogRepo  repository.BlogRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		blogRepo:  params.BlogRepo,
		pages:     newPageLimits(params.Config),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *blogService) ListBlogs(ctx context.Context, page usecase.PageInput) ([]*entity.Blog, error) {
	skip, limit := s.pages.normalize(page)

	blogs, err := s.blogRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

func (s *blogService) GetBlog(ctx context.Context, id int64) (*entity.Blog, error) {
	return findBlog(ctx, s.blogRepo, id)
}

func (s *blogService) CreateBlog(ctx context.Context, caller *entity.User, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	blog := &entity.Blog{
		AuthorID:         caller.ID,
		Title:            input.Title,
		ChiefDescription: input.ChiefDescription,
		Content:          input.Content,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "blog author no longer exists")
		}

		return nil, errors.Wrap(err, "failed to create blog")
	}
	blog.AuthorUsername = caller.Username

	s.log(ctx).Info("Blog created", slog.Int64("blogID", blog.ID), slog.Int64("authorID", caller.ID))

	return blog, nil
}

// UpdateBlog returns ErrBlogNotFound before ErrBlogOwnershipViolation, and
// writes nothing unless both checks pass.
func (s *blogService) UpdateBlog(ctx context.Context, caller *entity.User, id int64, patch entity.BlogPatch) (*entity.Blog, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var updated *entity.Blog
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		blog, err := findBlog(ctx, blogRepo, id)
		if err != nil {
			return err
		}

		if err := policy.AuthorizeMutation(blog.AuthorID, caller.ID); err != nil {
			return err
		}

		if patch.IsEmpty() {
			updated = blog

			return nil
		}

		patch.Apply(blog)
		modifiedAt := s.now().UTC()
		blog.ModifiedAt = &modifiedAt

		if err := blogRepo.Update(ctx, blog); err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound
			}

			return errors.Wrap(err, "failed to update blog")
		}

		updated = blog

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Blog update rejected", slog.Int64("blogID", id), slog.Int64("callerID", caller.ID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteBlog returns ErrBlogNotFound before ErrBlogOwnershipViolation.
func (s *blogService) DeleteBlog(ctx context.Context, caller *entity.User, id int64) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		blog, err := findBlog(ctx, blogRepo, id)
		if err != nil {
			return err
		}

		if err := policy.AuthorizeMutation(blog.AuthorID, caller.ID); err != nil {
			return err
		}

		if err := blogRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound
			}

			return errors.Wrap(err, "failed to delete blog")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Blog delete rejected", slog.Int64("blogID", id), slog.Int64("callerID", caller.ID), slog.Any("error", err))

		return err
	}

	s.log(ctx).Info("Blog deleted", slog.Int64("blogID", id))

	return nil
}

func findBlog(ctx context.Context, blogRepo repository.BlogRepository, id int64) (*entity.Blog, error) {
	blog, err := blogRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return nil, domainerrors.ErrBlogNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blog")
	}

	return blog, nil
}
