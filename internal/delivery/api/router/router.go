// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticated := r.authMiddleware.Authenticate

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.RegisterUser)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}

	// OAuth2 password flow token endpoints
	tokenGroup := api.Group("/login/oauth/access_token")
	{
		tokenGroup.POST("", r.authHandler.Login)
		tokenGroup.POST("/refresh", r.authHandler.RefreshAccessToken)
	}

	api.GET("/auth/current_user", r.userHandler.CurrentUser, authenticated)

	// Reads are public, mutations need a caller
	blogsGroup := api.Group("/blogs")
	{
		blogsGroup.GET("", r.blogHandler.ListBlogs)
		blogsGroup.GET("/:id", r.blogHandler.GetBlog)
		blogsGroup.POST("", r.blogHandler.CreateBlog, authenticated)
		blogsGroup.PATCH("/:id", r.blogHandler.UpdateBlog, authenticated)
		blogsGroup.DELETE("/:id", r.blogHandler.DeleteBlog, authenticated)
	}
}
