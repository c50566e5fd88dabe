// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalised email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// SetBuilding sets or, with a nil buildingID, clears the user's building reference.
	SetBuilding(ctx context.Context, userID uint, buildingID *uint) error

	// ListByRole returns users of the given role with their building preloaded, ordered by email.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// CountByRole counts users of the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
