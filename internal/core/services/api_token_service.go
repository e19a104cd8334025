package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/apperrors"
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/utils"
	"github.com/google/uuid"
)

const tokenSecretBytes = 32

// APITokenService manages per-user API tokens. A token on the wire is
// "<tokenID>.<secret>"; only a bcrypt hash of the secret is stored, so a
// leaked database cannot be replayed against the API.
type APITokenService struct {
	BaseService
	tokenRepo portsrepo.APITokenRepository
}

var _ portssvc.APITokenSvc = (*APITokenService)(nil)

func NewAPITokenService(tokenRepo portsrepo.APITokenRepository) *APITokenService {
	return &APITokenService{tokenRepo: tokenRepo}
}

func (s *APITokenService) issueToken(ctx context.Context, userID string) (string, *domain.APIToken, error) {
	secret, err := utils.GenerateSecureRandomString(tokenSecretBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token secret: %w", err)
	}
	hash, err := utils.HashPassword(secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash token secret: %w", err)
	}

	token := domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		TokenHash: hash,
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		s.LogError(ctx, err, "failed to save api token", slog.String("user_id", userID))
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.LogInfo(ctx, "api token issued", slog.String("user_id", userID), slog.String("token_id", token.TokenID))
	return token.TokenID + "." + secret, &token, nil
}

// GenerateToken creates the user's token if they do not have one yet. When a
// token already exists it is returned with an empty plaintext; callers must
// regenerate to obtain a new secret.
func (s *APITokenService) GenerateToken(ctx context.Context, userID string) (string, *domain.APIToken, error) {
	existing, err := s.tokenRepo.FindTokenByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", nil, fmt.Errorf("failed to check existing token: %w", err)
	}
	if existing != nil {
		return "", existing, nil
	}
	return s.issueToken(ctx, userID)
}

// RegenerateToken replaces the user's token, invalidating the old one.
func (s *APITokenService) RegenerateToken(ctx context.Context, userID string) (string, *domain.APIToken, error) {
	if err := s.tokenRepo.DeleteTokensByUserID(ctx, userID); err != nil {
		return "", nil, fmt.Errorf("failed to delete existing token: %w", err)
	}
	return s.issueToken(ctx, userID)
}

func (s *APITokenService) DeleteToken(ctx context.Context, userID string) error {
	token, err := s.tokenRepo.FindTokenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find token: %w", err)
	}

	if err := s.tokenRepo.DeleteTokensByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	s.LogInfo(ctx, "api token deleted", slog.String("user_id", userID), slog.String("token_id", token.TokenID))
	return nil
}

// ValidateToken resolves a plaintext token to the owning user ID, touching
// the token's last-used timestamp on success. Any malformed or mismatched
// token yields ErrUnauthorized without detail.
func (s *APITokenService) ValidateToken(ctx context.Context, token string) (string, error) {
	tokenID, secret, found := strings.Cut(token, ".")
	if !found || tokenID == "" || secret == "" {
		return "", apperrors.ErrUnauthorized
	}

	stored, err := s.tokenRepo.FindTokenByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to look up token: %w", err)
	}

	if !utils.CheckPasswordHash(secret, stored.TokenHash) {
		return "", apperrors.ErrUnauthorized
	}

	if err := s.tokenRepo.UpdateLastUsed(ctx, stored.TokenID, time.Now()); err != nil {
		// Best effort; the request should not fail because the touch did.
		s.LogError(ctx, err, "failed to update token last-used", slog.String("token_id", stored.TokenID))
	}
	return stored.UserID, nil
}
