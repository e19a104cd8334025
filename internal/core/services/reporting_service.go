package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/core/ledger"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService computes the aggregate views. It loads the user's
// ownership closure once per report and hands it to the ledger engine, so
// every figure in one response is derived from the same snapshot.
type ReportingService struct {
	BaseService
	walletRepo portsrepo.WalletRepository
	txnRepo    portsrepo.TransactionRepository
}

var _ portssvc.ReportingSvc = (*ReportingService)(nil)

func NewReportingService(walletRepo portsrepo.WalletRepository, txnRepo portsrepo.TransactionRepository) *ReportingService {
	return &ReportingService{walletRepo: walletRepo, txnRepo: txnRepo}
}

// WalletSummary rolls up every wallet the user owns with its derived
// balance. Only direct wallet transactions contribute to each balance;
// investment-nested entries do not.
func (s *ReportingService) WalletSummary(ctx context.Context, requestingUserID string) (*domain.WalletSummary, error) {
	wallets, err := s.walletRepo.ListWalletsByUserID(ctx, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to list wallets for summary", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to build wallet summary: %w", err)
	}

	txns, err := s.txnRepo.ListTransactionsByUserID(ctx, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions for summary", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to build wallet summary: %w", err)
	}

	byWallet := make(map[string][]domain.Transaction)
	for _, txn := range txns {
		if txn.BelongsToWallet() {
			byWallet[txn.WalletID] = append(byWallet[txn.WalletID], txn)
		}
	}

	summary := &domain.WalletSummary{
		TotalWallets: len(wallets),
		TotalBalance: decimal.Zero,
		Wallets:      make([]domain.WalletBalance, 0, len(wallets)),
	}
	for _, w := range wallets {
		balance := ledger.Balance(byWallet[w.WalletID])
		summary.TotalBalance = summary.TotalBalance.Add(balance)
		summary.Wallets = append(summary.Wallets, domain.WalletBalance{Wallet: w, Balance: balance})
	}
	return summary, nil
}

// MonthlySummary reports per-type sums for the calendar month containing
// ref, over the user's full ownership closure. This is a month-and-year
// match, not a rolling 30-day or month-to-date window.
func (s *ReportingService) MonthlySummary(ctx context.Context, requestingUserID string, ref time.Time) (*domain.MonthlySummary, error) {
	txns, err := s.txnRepo.ListTransactionsByUserID(ctx, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions for monthly summary", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	sum := ledger.Summarize(txns, ledger.CurrentMonth(ref))
	return &domain.MonthlySummary{
		Month:             int(ref.Month()),
		Year:              ref.Year(),
		Deposits:          sum.Deposits,
		Withdrawals:       sum.Withdrawals,
		Dividends:         sum.Dividends,
		NetIncome:         sum.NetIncome,
		TotalTransactions: sum.Count,
	}, nil
}

// IncomeSummary reports income over the standard windows. Income is one
// composed predicate (investment deposits plus wallet dividends) evaluated
// per transaction, so no entry can be counted twice.
func (s *ReportingService) IncomeSummary(ctx context.Context, requestingUserID string, ref time.Time) (*domain.IncomeSummary, error) {
	txns, err := s.txnRepo.ListTransactionsByUserID(ctx, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions for income summary", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to build income summary: %w", err)
	}

	income := ledger.Filter(txns, ledger.IsIncome)
	return &domain.IncomeSummary{
		Total:         ledger.SumAmounts(income),
		CurrentMonth:  sumInWindow(income, ledger.CurrentMonth(ref)),
		PreviousMonth: sumInWindow(income, ledger.PreviousMonth(ref)),
		YearToDate:    sumInWindow(income, ledger.YearToDate(ref)),
	}, nil
}

func sumInWindow(txns []domain.Transaction, iv ledger.Interval) decimal.Decimal {
	return ledger.SumAmounts(ledger.Filter(txns, func(txn domain.Transaction) bool {
		return iv.Contains(txn.Date)
	}))
}
