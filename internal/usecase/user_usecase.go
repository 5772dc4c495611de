// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username  string
	Email     string
	Password  string
	AvatarURL string
}

// PageInput selects a window of an ordered listing. Zero values mean defaults.
type PageInput struct {
	Skip  int
	Limit int
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Register creates an account. Email conflicts are reported before
	// username conflicts.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	ListUsers(ctx context.Context, page PageInput) ([]*entity.User, error)
}
