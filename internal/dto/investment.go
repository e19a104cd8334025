package dto

import (
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to create an investment
// under a wallet.
type CreateInvestmentRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	CategoryID string `json:"categoryID" binding:"required"`
}

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	ParentCategoryID *string `json:"parentCategoryID"`
}

// InvestmentResponse defines the data returned for an investment.
// CurrentBalance is deposits − withdrawals over its transactions.
type InvestmentResponse struct {
	InvestmentID   string          `json:"investmentID"`
	WalletID       string          `json:"walletID"`
	CategoryID     string          `json:"categoryID"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToInvestmentResponse converts a domain investment plus its derived balance to a DTO.
func ToInvestmentResponse(inv *domain.Investment, balance decimal.Decimal) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:   inv.InvestmentID,
		WalletID:       inv.WalletID,
		CategoryID:     inv.CategoryID,
		Name:           inv.Name,
		CurrentBalance: balance,
		CreatedAt:      inv.CreatedAt,
	}
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID       string    `json:"categoryID"`
	WalletID         string    `json:"walletID"`
	Name             string    `json:"name"`
	ParentCategoryID string    `json:"parentCategoryID,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain category to a DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:       c.CategoryID,
		WalletID:         c.WalletID,
		Name:             c.Name,
		ParentCategoryID: c.ParentCategoryID,
		CreatedAt:        c.CreatedAt,
	}
}
