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

// TransactionService implements the transaction lifecycle and the
// ownership-scoped resolution every read goes through. Ownership always
// resolves through the parent chain to a wallet's owner, and a mismatch is
// indistinguishable from the transaction not existing.
type TransactionService struct {
	BaseService
	txnRepo        portsrepo.TransactionRepository
	walletRepo     portsrepo.WalletRepository
	investmentRepo portsrepo.InvestmentRepository
}

var _ portssvc.TransactionSvc = (*TransactionService)(nil)

func NewTransactionService(txnRepo portsrepo.TransactionRepository, walletRepo portsrepo.WalletRepository, investmentRepo portsrepo.InvestmentRepository) *TransactionService {
	return &TransactionService{
		txnRepo:        txnRepo,
		walletRepo:     walletRepo,
		investmentRepo: investmentRepo,
	}
}

// validateTransactionFields checks amount, type and date together so the
// caller gets every failure in one response. The update (or create) is
// all-or-nothing: any failure here leaves the stored row untouched.
func validateTransactionFields(amount decimal.Decimal, txnType, rawDate string) (time.Time, apperrors.ValidationErrors) {
	var errs apperrors.ValidationErrors

	if amount.IsNegative() || amount.IsZero() {
		errs = append(errs, apperrors.FieldError{Field: "amount", Reason: "must be positive"})
	}
	if amount.Exponent() < -2 {
		errs = append(errs, apperrors.FieldError{Field: "amount", Reason: "must have at most two decimal places"})
	}
	if !domain.TransactionType(txnType).IsValid() {
		errs = append(errs, apperrors.FieldError{Field: "type", Reason: "must be one of deposit, withdrawal, dividend"})
	}

	var date time.Time
	if rawDate == "" {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		parsed, err := time.ParseInLocation(dto.TransactionDateFormat, rawDate, time.UTC)
		if err != nil {
			errs = append(errs, apperrors.FieldError{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"})
		} else {
			date = parsed
		}
	}

	return date, errs
}

// resolveWallet checks that the wallet exists and belongs to the requesting
// user. A mismatch is reported as not found.
func (s *TransactionService) resolveWallet(ctx context.Context, walletID, requestingUserID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve wallet: %w", err)
	}
	if wallet.UserID != requestingUserID {
		return nil, apperrors.ErrNotFound
	}
	return wallet, nil
}

// resolveTransaction loads a transaction and walks its parent chain (direct
// wallet, or investment then wallet) to verify the requesting user owns it.
func (s *TransactionService) resolveTransaction(ctx context.Context, transactionID, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve transaction: %w", err)
	}

	walletID := txn.WalletID
	if txn.BelongsToInvestment() {
		investment, err := s.investmentRepo.FindInvestmentByID(ctx, txn.InvestmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to resolve transaction parent: %w", err)
		}
		walletID = investment.WalletID
	}

	if _, err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, err
	}
	return txn, nil
}

// CreateTransaction records a new ledger entry under the given wallet, or
// under one of its investments when req.InvestmentID is set. The entry gets
// exactly one parent; a nested transaction carries only the investment ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, walletID, requestingUserID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if _, err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, err
	}

	date, errs := validateTransactionFields(req.Amount, req.Type, req.Date)
	if len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Type:          domain.TransactionType(req.Type),
		Date:          date,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if req.InvestmentID != nil && *req.InvestmentID != "" {
		investment, err := s.investmentRepo.FindInvestmentByID(ctx, *req.InvestmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to resolve investment: %w", err)
		}
		if investment.WalletID != walletID {
			return nil, apperrors.ErrNotFound
		}
		txn.InvestmentID = investment.InvestmentID
	} else {
		txn.WalletID = walletID
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID, requestingUserID string) (*domain.Transaction, error) {
	return s.resolveTransaction(ctx, transactionID, requestingUserID)
}

// UpdateTransaction replaces the mutable fields of a transaction. The parent
// container never changes through an update; moving an entry means deleting
// and recreating it.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID, requestingUserID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.resolveTransaction(ctx, transactionID, requestingUserID)
	if err != nil {
		return nil, err
	}

	date, errs := validateTransactionFields(req.Amount, req.Type, req.Date)
	if len(errs) > 0 {
		return nil, errs
	}

	txn.Amount = req.Amount
	txn.Type = domain.TransactionType(req.Type)
	txn.Date = date
	txn.Description = req.Description
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = requestingUserID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID, requestingUserID string) error {
	if _, err := s.resolveTransaction(ctx, transactionID, requestingUserID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *TransactionService) ListWalletTransactions(ctx context.Context, walletID, requestingUserID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if _, err := s.resolveWallet(ctx, walletID, requestingUserID); err != nil {
		return nil, nil, err
	}

	txns, next, err := s.txnRepo.ListTransactionsByWalletID(ctx, walletID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "failed to list wallet transactions", slog.String("wallet_id", walletID))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, next, nil
}

// ListUserTransactions returns the user's complete ownership closure: direct
// wallet transactions plus those nested under any investment of any owned
// wallet. An unknown typeFilter value yields an empty list, not an error.
func (s *TransactionService) ListUserTransactions(ctx context.Context, requestingUserID string, typeFilter string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByUserID(ctx, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to list user transactions", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if typeFilter != "" {
		txns = ledger.FilterByType(txns, domain.TransactionType(typeFilter))
	}
	return txns, nil
}
