package service

import (
	"errors"
	"time"

	"blog/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures. Callers at the HTTP edge collapse all of them into
// one generic unauthenticated response.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenMissingSubject   = errors.New("token has no subject")
	ErrTokenTypeMismatch     = errors.New("token type does not match")
)

// Claims defines the custom claims carried by access and refresh tokens.
type Claims struct {
	Username string           `json:"username"`
	Type     entity.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, expiring tokens. Implementations
// hold no per-token state and are safe for concurrent use.
type TokenService interface {
	// Issue signs a token of the given type for subject, expiring after ttl.
	Issue(subject string, tokenType entity.TokenType, ttl time.Duration) (string, error)

	// IssueAccessToken signs an access token with the configured access TTL.
	IssueAccessToken(subject string) (string, error)

	// IssueRefreshToken signs a refresh token with the configured refresh TTL.
	IssueRefreshToken(subject string) (string, error)

	// Validate verifies signature, expiry, subject and type, in that order.
	Validate(tokenString string, expected entity.TokenType) (*Claims, error)
}
