package repositories

import (
	"context"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// APITokenRepository defines persistence operations for API tokens.
// Each user holds at most one token at a time.
type APITokenRepository interface {
	SaveToken(ctx context.Context, token domain.APIToken) error
	FindTokenByID(ctx context.Context, tokenID string) (*domain.APIToken, error)
	FindTokenByUserID(ctx context.Context, userID string) (*domain.APIToken, error)
	DeleteTokensByUserID(ctx context.Context, userID string) error
	UpdateLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error
}
