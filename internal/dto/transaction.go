package dto

import (
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionDateFormat is the wire format for transaction dates.
const TransactionDateFormat = "2006-01-02"

// CreateTransactionRequest defines the data needed to create a transaction.
// The parent wallet comes from the URL; InvestmentID may be set instead to
// nest the transaction under one of the wallet's investments.
type CreateTransactionRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=deposit withdrawal dividend"`
	Date         string          `json:"date"` // YYYY-MM-DD; defaults to today when empty
	Description  string          `json:"description"`
	InvestmentID *string         `json:"investmentID"`
}

// UpdateTransactionRequest defines the data for editing a transaction.
// All listed fields are required; the update is all-or-nothing.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=deposit withdrawal dividend"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description string          `json:"description"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	WalletID      string          `json:"walletID,omitempty"`
	InvestmentID  string          `json:"investmentID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to a DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		WalletID:      t.WalletID,
		InvestmentID:  t.InvestmentID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Date:          t.Date.Format(TransactionDateFormat),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for transaction listings.
type ListTransactionsParams struct {
	Type      string  `form:"type"`
	Limit     int     `form:"limit,default=50"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a paginated transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
