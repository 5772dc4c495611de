// Package middleware holds the echo middleware of the API server.
package middleware

import (
	"log/slog"
	"strings"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves the bearer token of a request to the calling user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate lets the request through only with a valid access token whose
// subject still exists. Every failure gets the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return unauthenticated(c)
		}

		user, err := m.authUC.ResolveCaller(c.Request().Context(), token)
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return unauthenticated(c)
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if user == nil {
			return unauthenticated(c)
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
}

// GetCurrentUser returns the caller stored by Authenticate.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetCurrentUser(c)
}
