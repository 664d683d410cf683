package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/scanpoint/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// newBadgeToken mints the opaque value a user's QR code encodes. Tokens
// carry no embedded meaning; resolution is always a database lookup.
func newBadgeToken() string {
	return uuid.NewString()
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	entity := user.User{
		FullName:   req.FullName,
		Email:      req.Email,
		BadgeToken: newBadgeToken(),
		IsAdmin:    req.IsAdmin,
		IsActive:   true,
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		entity.PasswordHash = &hashStr
	}

	created, err := s.userRepo.Create(ctx, entity)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "user_id", created.ID, "is_admin", created.IsAdmin)

	return user.ToResponse(created), nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	entity, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Email != nil && *req.Email != entity.Email {
		if _, err := s.userRepo.GetByEmail(ctx, *req.Email); err == nil {
			return user.UserResponse{}, user.ErrEmailExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		entity.Email = *req.Email
	}
	if req.FullName != nil {
		entity.FullName = *req.FullName
	}
	if req.IsAdmin != nil {
		entity.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(entity), nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToResponse(entity), nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	entities, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, user.ToResponse(entity))
	}
	return responses, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	slog.Info("User deactivated", "user_id", id)
	return nil
}

// RegenerateToken replaces the user's badge token. The previous QR code
// stops resolving immediately; a scan with it reads as an invalid code.
func (s *UserServiceImpl) RegenerateToken(ctx context.Context, id string) (user.UserResponse, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	token := newBadgeToken()
	if err := s.userRepo.SetBadgeToken(ctx, id, token); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to set badge token: %w", err)
	}
	entity.BadgeToken = token

	slog.Info("Badge token regenerated", "user_id", id)

	return user.ToResponse(entity), nil
}
