package user

import (
	"context"
)

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create creates a user with a freshly generated badge token
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email (console login)
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByToken resolves a badge token to its user by exact match.
	// The scan path depends on this lookup.
	GetByToken(ctx context.Context, token string) (User, error)

	// List retrieves all users ordered by name
	List(ctx context.Context) ([]User, error)

	// Update updates profile fields of an existing user
	Update(ctx context.Context, u User) error

	// SetBadgeToken replaces a user's badge token (re-issued badge)
	SetBadgeToken(ctx context.Context, id string, token string) error

	// Delete deactivates a user
	Delete(ctx context.Context, id string) error
}
