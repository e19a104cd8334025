package repositories

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// WalletRepository defines persistence operations for wallets.
type WalletRepository interface {
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	// FindWalletByUserIDAndName does a case-sensitive exact-name lookup among
	// one owner's wallets; returns apperrors.ErrNotFound when absent.
	FindWalletByUserIDAndName(ctx context.Context, userID, name string) (*domain.Wallet, error)
	ListWalletsByUserID(ctx context.Context, userID string) ([]domain.Wallet, error)
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error
	// DeleteWalletCascade removes the wallet together with its categories,
	// investments, and every transaction under any of them, atomically.
	DeleteWalletCascade(ctx context.Context, walletID string) error
}
