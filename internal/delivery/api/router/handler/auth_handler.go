package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the token endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest accepts an OAuth2 password grant as a form or as JSON.
type LoginRequest struct {
	GrantType string `json:"grant_type" form:"grant_type" validate:"omitempty,eq=password"`
	Username  string `json:"username" form:"username" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

// RefreshRequest carries a refresh token issued by Login.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
}

// Login exchanges a username and password for an access/refresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Raw(c, http.StatusCreated, TokenResponse{
		TokenType:    output.TokenType,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// RefreshAccessToken issues a new access token for a valid refresh token.
func (h *AuthHandler) RefreshAccessToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.RefreshAccessToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Raw(c, http.StatusOK, TokenResponse{
		TokenType:   output.TokenType,
		AccessToken: output.AccessToken,
	})
}
