package repositories

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
// List results are always ordered by transaction date descending, then
// creation timestamp descending, so callers get a stable most-recent-first
// ordering without sorting again.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ListTransactionsByWalletID returns the wallet's direct transactions
	// (not those nested under its investments), paginated by token.
	ListTransactionsByWalletID(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactionsByWalletID returns every direct transaction of a
	// wallet without pagination, for balance derivation.
	ListAllTransactionsByWalletID(ctx context.Context, walletID string) ([]domain.Transaction, error)

	// ListTransactionsByInvestmentID returns an investment's transactions.
	ListTransactionsByInvestmentID(ctx context.Context, investmentID string) ([]domain.Transaction, error)

	// ListTransactionsByUserID returns every transaction in the user's
	// ownership closure: direct wallet transactions plus those nested under
	// any investment of any wallet the user owns, without duplicates.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
}
