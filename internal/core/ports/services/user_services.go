package services

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/dto"
)

// UserSvc defines user account operations.
type UserSvc interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
