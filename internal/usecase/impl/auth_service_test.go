package impl

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	now          time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv, ok := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*authService)
	require.True(t, ok)

	now := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		now:          now,
	}
}

func testUser() *entity.User {
	return &entity.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)
		fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)

		user, err := fx.service.Authenticate(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("unknown username", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		user, err := fx.service.Authenticate(ctx, "ghost", "s3cret")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		user, err := fx.service.Authenticate(ctx, "alice", "wrong")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("db down"))

		user, err := fx.service.Authenticate(ctx, "alice", "s3cret")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken("alice").Return("access-token", nil)
	fx.tokenService.EXPECT().IssueRefreshToken("alice").Return("refresh-token", nil)
	fx.userRepo.EXPECT().UpdateLastLogin(ctx, int64(7), fx.now).Return(nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, usecase.TokenTypeBearer, out.TokenType)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	require.NotNil(t, out.User.LastLogin)
	assert.Equal(t, fx.now, *out.User.LastLogin)
}

func TestAuthService_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "s3cret"})

	wrong := createTestAuthService(t)
	wrong.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)
	wrong.hasher.EXPECT().Check("nope", "hashed").Return(false)
	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "nope"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_LastLoginFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken("alice").Return("access-token", nil)
	fx.tokenService.EXPECT().IssueRefreshToken("alice").Return("refresh-token", nil)
	fx.userRepo.EXPECT().UpdateLastLogin(ctx, int64(7), fx.now).Return(errors.New("db down"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken("alice").Return("", errors.New("sign failed"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new access token for the same subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Validate("refresh-token", entity.TokenTypeRefresh).
			Return(&service.Claims{Username: "alice", Type: entity.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().IssueAccessToken("alice").Return("new-access", nil)

		out, err := fx.service.RefreshAccessToken(ctx, "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
		assert.Equal(t, usecase.TokenTypeBearer, out.TokenType)
	})

	for _, validationErr := range []error{
		service.ErrTokenExpired,
		service.ErrTokenInvalidSignature,
		service.ErrTokenMalformed,
		service.ErrTokenTypeMismatch,
	} {
		t.Run("rejects "+validationErr.Error(), func(t *testing.T) {
			fx := createTestAuthService(t)
			fx.tokenService.EXPECT().Validate("bad", entity.TokenTypeRefresh).Return(nil, validationErr)

			out, err := fx.service.RefreshAccessToken(ctx, "bad")
			assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
			assert.Nil(t, out)
		})
	}
}

func TestAuthService_ResolveCaller(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the token subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Validate("access", entity.TokenTypeAccess).
			Return(&service.Claims{Username: "alice", Type: entity.TokenTypeAccess}, nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(testUser(), nil)

		user, err := fx.service.ResolveCaller(ctx, "access")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("invalid token is unauthenticated", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Validate("expired", entity.TokenTypeAccess).Return(nil, service.ErrTokenExpired)

		_, err := fx.service.ResolveCaller(ctx, "expired")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("deleted subject is unauthenticated", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Validate("access", entity.TokenTypeAccess).
			Return(&service.Claims{Username: "gone", Type: entity.TokenTypeAccess}, nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "gone").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ResolveCaller(ctx, "access")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("storage failure is not reported as unauthenticated", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Validate("access", entity.TokenTypeAccess).
			Return(&service.Claims{Username: "alice", Type: entity.TokenTypeAccess}, nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("db down"))

		_, err := fx.service.ResolveCaller(ctx, "access")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
