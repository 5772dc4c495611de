package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
	Logger *slog.Logger
}

// BlogHandler holds dependencies for blog handlers.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler.
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// CreateBlogRequest represents the request body for a new blog.
type CreateBlogRequest struct {
	Title            string `json:"title" validate:"required,notblank,max=50"`
	ChiefDescription string `json:"chief_description" validate:"max=240"`
	Content          string `json:"content"`
}

// UpdateBlogRequest is a partial update. Omitted fields keep their value.
type UpdateBlogRequest struct {
	Title            *string `json:"title" validate:"omitnil,notblank,max=50"`
	ChiefDescription *string `json:"chief_description" validate:"omitnil,max=240"`
	Content          *string `json:"content"`
}

// ListBlogs handles paginated blog listing.
func (h *BlogHandler) ListBlogs(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "skip and limit must be integers")
	}

	blogs, err := h.blogUC.ListBlogs(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, newBlogResponse(blog))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetBlog handles fetching a single blog.
func (h *BlogHandler) GetBlog(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blog ID")
	}

	blog, err := h.blogUC.GetBlog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBlogResponse(blog))
}

// CreateBlog publishes a blog authored by the caller.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	var req CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogUC.CreateBlog(c.Request().Context(), caller, &usecase.CreateBlogInput{
		Title:            req.Title,
		ChiefDescription: req.ChiefDescription,
		Content:          req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBlogResponse(blog))
}

// UpdateBlog applies a partial update on behalf of the blog's author.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blog ID")
	}

	var req UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogUC.UpdateBlog(c.Request().Context(), caller, id, entity.BlogPatch{
		Title:            req.Title,
		ChiefDescription: req.ChiefDescription,
		Content:          req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBlogResponse(blog))
}

// DeleteBlog removes a blog on behalf of its author.
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blog ID")
	}

	if err := h.blogUC.DeleteBlog(c.Request().Context(), caller, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
