package context

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser stores the caller resolved by the auth middleware.
const KeyCurrentUser ContextKey = "current_user"

// SetCurrentUser stores the authenticated caller on both the echo context and
// the request context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
	c.SetRequest(c.Request().WithContext(WithCurrentUser(c.Request().Context(), user)))
}

// GetCurrentUser returns the caller stored by the auth middleware.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)

	return user, ok && user != nil
}

func WithCurrentUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyCurrentUser, user)
}

// CurrentUserFromContext returns the caller stored in ctx.
func CurrentUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyCurrentUser).(*entity.User)

	return user, ok && user != nil
}
