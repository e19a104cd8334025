package services

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/shopspring/decimal"
)

// InvestmentSvc defines investment and category operations within a wallet.
type InvestmentSvc interface {
	CreateInvestment(ctx context.Context, walletID, requestingUserID string, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	ListInvestments(ctx context.Context, walletID, requestingUserID string) ([]domain.Investment, error)
	GetInvestmentBalance(ctx context.Context, investmentID, requestingUserID string) (decimal.Decimal, error)

	CreateCategory(ctx context.Context, walletID, requestingUserID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, walletID, requestingUserID string) ([]domain.Category, error)
}
