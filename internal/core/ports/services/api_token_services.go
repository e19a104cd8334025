package services

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// APITokenSvc manages per-user API tokens. GenerateToken returns the
// existing token record (without a plaintext secret) if one exists;
// RegenerateToken always replaces it.
type APITokenSvc interface {
	// GenerateToken creates the user's token if absent. The returned string
	// is the plaintext token and is empty when a token already existed.
	GenerateToken(ctx context.Context, userID string) (string, *domain.APIToken, error)
	// RegenerateToken deletes any existing token and issues a fresh one.
	RegenerateToken(ctx context.Context, userID string) (string, *domain.APIToken, error)
	DeleteToken(ctx context.Context, userID string) error
	// ValidateToken resolves a plaintext token to the owning user ID.
	ValidateToken(ctx context.Context, token string) (string, error)
}
