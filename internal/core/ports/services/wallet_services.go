package services

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/shopspring/decimal"
)

// WalletSvc defines wallet operations. Every method takes the requesting
// user's ID explicitly; a wallet owned by someone else behaves exactly
// like a wallet that does not exist.
type WalletSvc interface {
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error)
	GetWalletByID(ctx context.Context, walletID, requestingUserID string) (*domain.Wallet, error)
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)
	RenameWallet(ctx context.Context, walletID, requestingUserID string, req dto.RenameWalletRequest) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, walletID, requestingUserID string) error

	// GetWalletBalance derives the wallet's balance from its direct
	// transactions. Same ownership rules as GetWalletByID.
	GetWalletBalance(ctx context.Context, walletID, requestingUserID string) (decimal.Decimal, error)
}

// WalletReaderSvc is the narrow read surface other services need to
// resolve ownership.
type WalletReaderSvc interface {
	GetWalletByID(ctx context.Context, walletID, requestingUserID string) (*domain.Wallet, error)
}
