// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new tenant.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the session token to store in the cookie.
type LoginOutput struct {
	User         *entity.User
	SessionToken string
}

// AuthUsecase defines registration, login and the session gates.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a tenant account. The email is trimmed and lower-cased first.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a session token bound to the user id and role.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate resolves a session token to its current user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// Authorize fails with ErrForbidden when the user's role lacks the capability.
	Authorize(user *entity.User, capability entity.Capability) error

	// BootstrapAdmin creates the admin account when it does not exist yet.
	BootstrapAdmin(ctx context.Context, email, password string) (bool, error)
}
