package handler

import (
	"strconv"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of a user. The password hash never leaves the service.
type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	AvatarURL string     `json:"avatar_url"`
	CreatedAt time.Time  `json:"created_time"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

// BlogResponse is the public view of a blog with its author's username.
type BlogResponse struct {
	ID               int64      `json:"id"`
	Author           string     `json:"author"`
	Title            string     `json:"title"`
	ChiefDescription string     `json:"chief_description"`
	Content          string     `json:"content"`
	CreatedTime      time.Time  `json:"created_time"`
	ModifiedTime     *time.Time `json:"modified_time"`
}

func newBlogResponse(blog *entity.Blog) BlogResponse {
	return BlogResponse{
		ID:               blog.ID,
		Author:           blog.AuthorUsername,
		Title:            blog.Title,
		ChiefDescription: blog.ChiefDescription,
		Content:          blog.Content,
		CreatedTime:      blog.CreatedAt,
		ModifiedTime:     blog.ModifiedAt,
	}
}

// TokenResponse follows the OAuth2 token response layout.
type TokenResponse struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// bindPage reads the optional skip and limit query parameters.
func bindPage(c echo.Context) (usecase.PageInput, error) {
	var page usecase.PageInput
	err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &page.Limit).
		BindError()

	return page, err
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
