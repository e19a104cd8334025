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
	"github.com/FranzoniLeo/financial-control/internal/core/ledger"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletService implements wallet operations, including the guard rules for
// mutations: name validation, per-user case-sensitive uniqueness, and
// ownership checks that surface as not-found.
type WalletService struct {
	BaseService
	walletRepo portsrepo.WalletRepository
	txnRepo    portsrepo.TransactionRepository
}

var _ portssvc.WalletSvc = (*WalletService)(nil)

func NewWalletService(walletRepo portsrepo.WalletRepository, txnRepo portsrepo.TransactionRepository) *WalletService {
	return &WalletService{walletRepo: walletRepo, txnRepo: txnRepo}
}

// validateWalletName collects every failure at once so the caller sees the
// full picture, not just the first broken rule.
func validateWalletName(name string) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors
	if strings.TrimSpace(name) == "" {
		errs = append(errs, apperrors.FieldError{Field: "name", Reason: "must not be empty"})
	}
	if len(name) > domain.MaxWalletNameLength {
		errs = append(errs, apperrors.FieldError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", domain.MaxWalletNameLength)})
	}
	return errs
}

// ensureNameAvailable enforces case-sensitive uniqueness among the user's
// wallets. "Savings" and "savings" are distinct names.
func (s *WalletService) ensureNameAvailable(ctx context.Context, userID, name, excludeWalletID string) error {
	existing, err := s.walletRepo.FindWalletByUserIDAndName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check wallet name availability: %w", err)
	}
	if existing.WalletID == excludeWalletID {
		return nil
	}
	return apperrors.ErrDuplicate
}

func (s *WalletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error) {
	if errs := validateWalletName(req.Name); len(errs) > 0 {
		return nil, errs
	}
	if err := s.ensureNameAvailable(ctx, userID, req.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	wallet := domain.Wallet{
		WalletID: uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		s.LogError(ctx, err, "failed to save wallet", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.LogInfo(ctx, "wallet created", slog.String("wallet_id", wallet.WalletID), slog.String("user_id", userID))
	return &wallet, nil
}

// GetWalletByID resolves a wallet for the requesting user. A wallet owned by
// another user is reported as not found, never as forbidden, so wallet IDs
// cannot be probed for existence.
func (s *WalletService) GetWalletByID(ctx context.Context, walletID, requestingUserID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find wallet", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet.UserID != requestingUserID {
		return nil, apperrors.ErrNotFound
	}
	return wallet, nil
}

func (s *WalletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWalletsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list wallets", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// RenameWallet changes a wallet's display name. All validation failures are
// reported together; a no-op rename to the current name succeeds. On any
// failure the stored name is untouched.
func (s *WalletService) RenameWallet(ctx context.Context, walletID, requestingUserID string, req dto.RenameWalletRequest) (*domain.Wallet, error) {
	wallet, err := s.GetWalletByID(ctx, walletID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if errs := validateWalletName(req.Name); len(errs) > 0 {
		return nil, errs
	}
	if err := s.ensureNameAvailable(ctx, requestingUserID, req.Name, walletID); err != nil {
		return nil, err
	}

	wallet.Name = req.Name
	wallet.LastUpdatedAt = time.Now()
	wallet.LastUpdatedBy = requestingUserID

	if err := s.walletRepo.UpdateWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "failed to rename wallet", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to rename wallet: %w", err)
	}

	s.LogInfo(ctx, "wallet renamed", slog.String("wallet_id", walletID))
	return wallet, nil
}

// DeleteWallet removes the wallet and everything under it: categories,
// investments, and all of their transactions, in one atomic operation.
func (s *WalletService) DeleteWallet(ctx context.Context, walletID, requestingUserID string) error {
	if _, err := s.GetWalletByID(ctx, walletID, requestingUserID); err != nil {
		return err
	}

	if err := s.walletRepo.DeleteWalletCascade(ctx, walletID); err != nil {
		s.LogError(ctx, err, "failed to delete wallet", slog.String("wallet_id", walletID))
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	s.LogInfo(ctx, "wallet deleted", slog.String("wallet_id", walletID), slog.String("user_id", requestingUserID))
	return nil
}

// GetWalletBalance derives the wallet's balance from its direct transactions
// only; transactions nested under its investments do not contribute.
func (s *WalletService) GetWalletBalance(ctx context.Context, walletID, requestingUserID string) (decimal.Decimal, error) {
	if _, err := s.GetWalletByID(ctx, walletID, requestingUserID); err != nil {
		return decimal.Zero, err
	}

	txns, err := s.txnRepo.ListAllTransactionsByWalletID(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "failed to list wallet transactions", slog.String("wallet_id", walletID))
		return decimal.Zero, fmt.Errorf("failed to compute wallet balance: %w", err)
	}
	return ledger.Balance(txns), nil
}
