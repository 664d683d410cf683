package user

import (
	"context"
)

// UserService defines business logic for user management
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Delete(ctx context.Context, id string) error

	// RegenerateToken issues a fresh badge token, invalidating the old QR code
	RegenerateToken(ctx context.Context, id string) (UserResponse, error)
}
