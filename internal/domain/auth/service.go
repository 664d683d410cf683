package auth

import (
	"context"
)

// AuthService defines console authentication operations
type AuthService interface {
	// Login verifies admin credentials and issues token pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a refresh token for a new access token
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)
}
