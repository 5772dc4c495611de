// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	pages     pageLimits
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		pages:     newPageLimits(params.Config),
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register checks email then username for conflicts, hashes the password and
// creates the user, all in one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureAbsent(userRepo.FindByEmail(ctx, input.Email)); err != nil {
			return conflictOr(err, domainerrors.ErrEmailAlreadyRegistered, "failed to check email")
		}

		if err := ensureAbsent(userRepo.FindByUsername(ctx, input.Username)); err != nil {
			return conflictOr(err, domainerrors.ErrUsernameAlreadyRegistered, "failed to check username")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if errors.Is(err, service.ErrPasswordTooLong) {
			return errPasswordTooLong
		}
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			AvatarURL:    input.AvatarURL,
			PasswordHash: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", registered.ID))

	return registered, nil
}

var (
	errBlankUsername   = domainerrors.ErrValidationFailed.WithDetails("username must not be blank or carry surrounding whitespace")
	errPasswordTooLong = domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")
)

// validateRegistration rejects usernames that could never be used as a token
// subject and passwords bcrypt cannot hash.
func validateRegistration(input *usecase.RegisterUserInput) error {
	username := strings.TrimSpace(input.Username)
	if username == "" || username != input.Username {
		return errBlankUsername
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return errPasswordTooLong
	}

	return nil
}

var errAlreadyPresent = errors.New("record already present")

// ensureAbsent turns a lookup result into nil when nothing was found,
// errAlreadyPresent when a record exists, or the lookup error.
func ensureAbsent(found *entity.User, err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if found != nil {
		return errAlreadyPresent
	}

	return nil
}

func conflictOr(err error, conflict *domainerrors.BaseError, op string) error {
	if errors.Is(err, errAlreadyPresent) {
		return conflict
	}

	return errors.Wrap(err, op)
}

func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, page usecase.PageInput) ([]*entity.User, error) {
	skip, limit := srv.pages.normalize(page)

	users, err := srv.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
