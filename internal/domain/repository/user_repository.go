// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"blog/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by its ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by exact email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users ordered by ID.
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)

	// Create persists a new user and fills in its ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastLogin records the time of a successful login.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}
