package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

// InvestmentService implements investment and category operations. Both are
// scoped under a wallet, so every call resolves wallet ownership first.
type InvestmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepository
	walletRepo     portsrepo.WalletRepository
	txnRepo        portsrepo.TransactionRepository
}

var _ portssvc.InvestmentSvc = (*InvestmentService)(nil)

func NewInvestmentService(investmentRepo portsrepo.InvestmentRepository, walletRepo portsrepo.WalletRepository, txnRepo portsrepo.TransactionRepository) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		walletRepo:     walletRepo,
		txnRepo:        txnRepo,
	}
}

func (s *InvestmentService) resolveWallet(ctx context.Context, walletID, requestingUserID string) error {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to resolve wallet: %w", err)
	}
	if wallet.UserID != requestingUserID {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *InvestmentService) CreateInvestment(ctx context.Context, walletID, requestingUserID string, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	if err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, err
	}

	category, err := s.investmentRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("categoryID", "category does not exist")
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category.WalletID != walletID {
		// Categories from another wallet are invisible here.
		return nil, apperrors.NewValidationError("categoryID", "category does not exist")
	}

	now := time.Now()
	investment := domain.Investment{
		InvestmentID: uuid.NewString(),
		WalletID:     walletID,
		CategoryID:   category.CategoryID,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		s.LogError(ctx, err, "failed to save investment", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	s.LogInfo(ctx, "investment created", slog.String("investment_id", investment.InvestmentID))
	return &investment, nil
}

func (s *InvestmentService) ListInvestments(ctx context.Context, walletID, requestingUserID string) ([]domain.Investment, error) {
	if err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, err
	}

	investments, err := s.investmentRepo.ListInvestmentsByWalletID(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "failed to list investments", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

// GetInvestmentBalance derives the investment's balance as deposits minus
// withdrawals. Dividend entries show up in income summaries instead.
func (s *InvestmentService) GetInvestmentBalance(ctx context.Context, investmentID, requestingUserID string) (decimal.Decimal, error) {
	investment, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to resolve investment: %w", err)
	}
	if err := s.resolveWallet(ctx, investment.WalletID, requestingUserID); err != nil {
		return decimal.Zero, err
	}

	txns, err := s.txnRepo.ListTransactionsByInvestmentID(ctx, investmentID)
	if err != nil {
		s.LogError(ctx, err, "failed to list investment transactions", slog.String("investment_id", investmentID))
		return decimal.Zero, fmt.Errorf("failed to compute investment balance: %w", err)
	}
	return ledger.InvestmentBalance(txns), nil
}

func (s *InvestmentService) CreateCategory(ctx context.Context, walletID, requestingUserID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, err
	}

	var parentID string
	if req.ParentCategoryID != nil && *req.ParentCategoryID != "" {
		parent, err := s.investmentRepo.FindCategoryByID(ctx, *req.ParentCategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("parentCategoryID", "parent category does not exist")
			}
			return nil, fmt.Errorf("failed to resolve parent category: %w", err)
		}
		if parent.WalletID != walletID {
			return nil, apperrors.NewValidationError("parentCategoryID", "parent category does not exist")
		}
		parentID = parent.CategoryID
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:       uuid.NewString(),
		WalletID:         walletID,
		Name:             req.Name,
		ParentCategoryID: parentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.investmentRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to save category", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *InvestmentService) ListCategories(ctx context.Context, walletID, requestingUserID string) ([]domain.Category, error) {
	if err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, err
	}

	categories, err := s.investmentRepo.ListCategoriesByWalletID(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "failed to list categories", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
