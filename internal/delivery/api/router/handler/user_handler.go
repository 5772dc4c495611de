// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest represents the request body for registering a user.
type RegisterUserRequest struct {
	Username  string `json:"username" validate:"required,notblank,trimmed,max=32"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,maxbytes=72"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url,max=255"`
}

// RegisterUser handles account creation.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// GetUser handles fetching a user by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ListUsers handles paginated user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "skip and limit must be integers")
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

// CurrentUser returns the caller resolved by the auth middleware.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
