package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate looks the user up by exact username and verifies the password.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, nil
	}

	return user, nil
}

// Login authenticates the user, issues an access/refresh pair and records the login time.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(user.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	loginAt := srv.now().UTC()
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}
	user.LastLogin = &loginAt

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		TokenType:    usecase.TokenTypeBearer,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshAccessToken validates the refresh token and issues a new access token
// for the same subject. The refresh token itself is neither rotated nor revoked.
func (srv *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.Validate(refreshToken, entity.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	accessToken, err := srv.tokenService.IssueAccessToken(claims.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.RefreshOutput{
		TokenType:   usecase.TokenTypeBearer,
		AccessToken: accessToken,
	}, nil
}

// ResolveCaller validates an access token and loads its subject. Every token
// problem and a missing subject user collapse into ErrUnauthenticated.
func (srv *authService) ResolveCaller(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(accessToken, entity.TokenTypeAccess)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return user, nil
}
