package repositories

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// InvestmentRepository defines persistence operations for investments and
// their categories.
type InvestmentRepository interface {
	SaveInvestment(ctx context.Context, investment domain.Investment) error
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListInvestmentsByWalletID(ctx context.Context, walletID string) ([]domain.Investment, error)

	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategoriesByWalletID(ctx context.Context, walletID string) ([]domain.Category, error)
}
