package auth

import (
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestJWTService(t *testing.T) (*jwtService, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	return newJWTService([]byte(testSecret), jwt.SigningMethodHS256, 15*time.Minute, 7*24*time.Hour, clock.Now), clock
}

func TestNewJWTService(t *testing.T) {
	t.Run("requires a signing secret", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{SigningMethod: "HS256"}}

		svc, err := NewJWTService(cfg)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("rejects non-HMAC signing methods", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{SigningMethod: "RS256"}}
		cfg.SecretKey.Signing = testSecret

		svc, err := NewJWTService(cfg)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("builds with HS512", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{
			SigningMethod:   "HS512",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		}}
		cfg.SecretKey.Signing = testSecret

		svc, err := NewJWTService(cfg)
		require.NoError(t, err)

		token, err := svc.IssueAccessToken("alice")
		require.NoError(t, err)

		claims, err := svc.Validate(token, entity.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
	})
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, clock := newTestJWTService(t)

	accessToken, err := svc.IssueAccessToken("alice")
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken("alice")
	require.NoError(t, err)

	accessClaims, err := svc.Validate(accessToken, entity.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice", accessClaims.Username)
	assert.Equal(t, entity.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, clock.Now(), accessClaims.IssuedAt.Time.UTC())
	assert.Equal(t, clock.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time.UTC())

	refreshClaims, err := svc.Validate(refreshToken, entity.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeRefresh, refreshClaims.Type)
	assert.Equal(t, clock.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt.Time.UTC())
}

func TestJWTService_IssueRequiresSubject(t *testing.T) {
	svc, _ := newTestJWTService(t)

	token, err := svc.Issue("  ", entity.TokenTypeAccess, time.Minute)
	assert.ErrorIs(t, err, service.ErrTokenMissingSubject)
	assert.Empty(t, token)
}

func TestJWTService_Validate_Expiry(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, err := svc.IssueAccessToken("alice")
	require.NoError(t, err)

	clock.Advance(14 * time.Minute)
	_, err = svc.Validate(token, entity.TokenTypeAccess)
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	claims, err := svc.Validate(token, entity.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_Validate_WrongSecretWinsOverExpiry(t *testing.T) {
	svc, clock := newTestJWTService(t)
	other := newJWTService([]byte("another_secret_entirely"), jwt.SigningMethodHS256, 15*time.Minute, time.Hour, clock.Now)

	token, err := other.IssueAccessToken("alice")
	require.NoError(t, err)

	_, err = svc.Validate(token, entity.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalidSignature)

	clock.Advance(time.Hour)
	_, err = svc.Validate(token, entity.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalidSignature)
}

func TestJWTService_Validate_Failures(t *testing.T) {
	svc, clock := newTestJWTService(t)

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}

	exp := jwt.NewNumericDate(clock.Now().Add(time.Minute))

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		expected entity.TokenType
		wantErr  error
	}{
		{
			name:     "not a jwt",
			token:    func(*testing.T) string { return "clearly-not-a-jwt" },
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenMalformed,
		},
		{
			name:     "three garbage segments",
			token:    func(*testing.T) string { return "not.a.jwt" },
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenMalformed,
		},
		{
			name:     "empty string",
			token:    func(*testing.T) string { return "" },
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenMalformed,
		},
		{
			name: "missing exp claim",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"username": "alice", "type": "access"})
			},
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenMalformed,
		},
		{
			name: "missing username claim",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), &service.Claims{
					Type:             entity.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenMissingSubject,
		},
		{
			name: "alg none",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, &service.Claims{
					Username:         "alice",
					Type:             entity.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenInvalidSignature,
		},
		{
			name: "different HMAC algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(testSecret), &service.Claims{
					Username:         "alice",
					Type:             entity.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenInvalidSignature,
		},
		{
			name: "refresh token used as access token",
			token: func(t *testing.T) string {
				token, err := svc.IssueRefreshToken("alice")
				require.NoError(t, err)

				return token
			},
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenTypeMismatch,
		},
		{
			name: "access token used as refresh token",
			token: func(t *testing.T) string {
				token, err := svc.IssueAccessToken("alice")
				require.NoError(t, err)

				return token
			},
			expected: entity.TokenTypeRefresh,
			wantErr:  service.ErrTokenTypeMismatch,
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				token, err := svc.IssueAccessToken("alice")
				require.NoError(t, err)
				forged, err := svc.IssueAccessToken("mallory")
				require.NoError(t, err)

				return headerAndPayload(forged) + "." + signature(token)
			},
			expected: entity.TokenTypeAccess,
			wantErr:  service.ErrTokenInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token(t), tt.expected)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_RefreshFlowIssuesFreshAccessToken(t *testing.T) {
	svc, clock := newTestJWTService(t)

	refreshToken, err := svc.IssueRefreshToken("alice")
	require.NoError(t, err)

	clock.Advance(3 * time.Hour)

	claims, err := svc.Validate(refreshToken, entity.TokenTypeRefresh)
	require.NoError(t, err)

	accessToken, err := svc.IssueAccessToken(claims.Username)
	require.NoError(t, err)

	accessClaims, err := svc.Validate(accessToken, entity.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice", accessClaims.Username)
	assert.Equal(t, clock.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time.UTC())
}

func headerAndPayload(token string) string {
	for i := len(token) - 1; i >= 0; i-- {
		if token[i] == '.' {
			return token[:i]
		}
	}

	return token
}

func signature(token string) string {
	for i := len(token) - 1; i >= 0; i-- {
		if token[i] == '.' {
			return token[i+1:]
		}
	}

	return ""
}
