package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// TokenTypeBearer is the token_type reported to OAuth2-style clients.
const TokenTypeBearer = "Bearer"

// LoginInput defines the credentials of a password login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	TokenType    string
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a freshly issued access token.
type RefreshOutput struct {
	TokenType   string
	AccessToken string
}

// AuthUsecase covers credential verification, token issuance and caller resolution.
type AuthUsecase interface {
	// Authenticate returns the user whose password matches, or nil when the
	// username is unknown or the password is wrong. The two cases are
	// indistinguishable; only infrastructure failures produce an error.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshAccessToken exchanges a valid refresh token for a new access token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// ResolveCaller maps a bearer access token to an existing user.
	ResolveCaller(ctx context.Context, accessToken string) (*entity.User, error)
}
