package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/FranzoniLeo/financial-control/internal/apperrors"
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/FranzoniLeo/financial-control/internal/utils"
	"github.com/google/uuid"
)

// UserService implements user account operations on top of the user repository.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

var _ portssvc.UserSvc = (*UserService)(nil)

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser registers a new user with a bcrypt-hashed password. Usernames
// are unique; a taken username yields apperrors.ErrDuplicate.
func (s *UserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check username availability", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "user created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to get user by ID", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to get user by username", slog.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
