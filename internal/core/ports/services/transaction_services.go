package services

import (
	"context"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/dto"
)

// TransactionSvc defines transaction lifecycle operations and the
// ownership-scoped listings every report is built from.
type TransactionSvc interface {
	CreateTransaction(ctx context.Context, walletID, requestingUserID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID, requestingUserID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID, requestingUserID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, requestingUserID string) error

	// ListWalletTransactions returns a wallet's direct transactions after
	// verifying the wallet belongs to the requesting user.
	ListWalletTransactions(ctx context.Context, walletID, requestingUserID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListUserTransactions returns the requesting user's full ownership
	// closure, optionally narrowed to one transaction type. An unknown type
	// yields an empty list, not an error.
	ListUserTransactions(ctx context.Context, requestingUserID string, typeFilter string) ([]domain.Transaction, error)
}
