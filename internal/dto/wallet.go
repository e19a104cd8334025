package dto

import (
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to create a new wallet.
type CreateWalletRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// RenameWalletRequest defines the data for renaming a wallet.
type RenameWalletRequest struct {
	Name string `json:"name" binding:"required"`
}

// WalletResponse defines the data returned for a wallet. TotalBalance is
// recomputed from the wallet's transactions on every read.
type WalletResponse struct {
	WalletID     string          `json:"walletID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToWalletResponse converts a domain wallet plus its derived balance to a DTO.
func ToWalletResponse(w *domain.Wallet, balance decimal.Decimal) WalletResponse {
	return WalletResponse{
		WalletID:     w.WalletID,
		UserID:       w.UserID,
		Name:         w.Name,
		TotalBalance: balance,
		CreatedAt:    w.CreatedAt,
	}
}

// ListWalletsResponse wraps the list of wallets.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}
