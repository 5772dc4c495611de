// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HMAC-signed JWTs.
type jwtService struct {
	secret     []byte            // Process-wide signing secret, fixed at startup.
	method     jwt.SigningMethod // HS256, HS384 or HS512.
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService builds the token service from the signing secret and auth settings.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Signing) == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	method, err := signingMethod(cfg.Auth.SigningMethod)
	if err != nil {
		return nil, err
	}

	return newJWTService([]byte(cfg.SecretKey.Signing), method, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL, time.Now), nil
}

func newJWTService(secret []byte, method jwt.SigningMethod, accessTTL, refreshTTL time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret:     secret,
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        now,
	}
}

func signingMethod(name string) (jwt.SigningMethod, error) {
	if name == "" {
		return jwt.SigningMethodHS256, nil
	}

	method, ok := jwt.GetSigningMethod(name).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt signing method %q", name)
	}

	return method, nil
}

// Issue signs a token carrying username, type, iat and exp claims.
func (s *jwtService) Issue(subject string, tokenType entity.TokenType, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", service.ErrTokenMissingSubject
	}

	now := s.now()
	claims := &service.Claims{
		Username: subject,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) IssueAccessToken(subject string) (string, error) {
	return s.Issue(subject, entity.TokenTypeAccess, s.accessTTL)
}

func (s *jwtService) IssueRefreshToken(subject string) (string, error) {
	return s.Issue(subject, entity.TokenTypeRefresh, s.refreshTTL)
}

// Validate parses tokenString and checks signature, expiry, subject and type.
// A token signed with another key fails as ErrTokenInvalidSignature even when
// it is also expired.
func (s *jwtService) Validate(tokenString string, expected entity.TokenType) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	if strings.TrimSpace(claims.Username) == "" {
		return nil, service.ErrTokenMissingSubject
	}

	if claims.Type != expected {
		return nil, errors.Wrapf(service.ErrTokenTypeMismatch, "expected %s, got %q", expected, claims.Type)
	}

	return claims, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != s.method.Alg() {
		return nil, errors.Errorf("unexpected signing method: %s", token.Method.Alg())
	}

	return s.secret, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenInvalidSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
