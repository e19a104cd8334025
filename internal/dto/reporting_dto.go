package dto

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletSummaryResponse is the dashboard rollup over every wallet the
// requesting user owns.
type WalletSummaryResponse struct {
	TotalWallets int              `json:"total_wallets"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
	Wallets      []WalletResponse `json:"wallets"`
}

// ToWalletSummaryResponse converts a domain wallet summary to a DTO.
func ToWalletSummaryResponse(s *domain.WalletSummary) WalletSummaryResponse {
	wallets := make([]WalletResponse, len(s.Wallets))
	for i, wb := range s.Wallets {
		wallets[i] = ToWalletResponse(&wb.Wallet, wb.Balance)
	}
	return WalletSummaryResponse{
		TotalWallets: s.TotalWallets,
		TotalBalance: s.TotalBalance,
		Wallets:      wallets,
	}
}

// MonthlySummaryResponse reports per-type sums for the current calendar month.
type MonthlySummaryResponse struct {
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	Deposits          decimal.Decimal `json:"deposits"`
	Withdrawals       decimal.Decimal `json:"withdrawals"`
	Dividends         decimal.Decimal `json:"dividends"`
	NetIncome         decimal.Decimal `json:"net_income"`
	TotalTransactions int             `json:"total_transactions"`
}

// ToMonthlySummaryResponse converts a domain monthly summary to a DTO.
func ToMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:             s.Month,
		Year:              s.Year,
		Deposits:          s.Deposits,
		Withdrawals:       s.Withdrawals,
		Dividends:         s.Dividends,
		NetIncome:         s.NetIncome,
		TotalTransactions: s.TotalTransactions,
	}
}

// IncomeSummaryResponse reports income over the standard windows.
type IncomeSummaryResponse struct {
	Total         decimal.Decimal `json:"total"`
	CurrentMonth  decimal.Decimal `json:"current_month"`
	PreviousMonth decimal.Decimal `json:"previous_month"`
	YearToDate    decimal.Decimal `json:"year_to_date"`
}

// ToIncomeSummaryResponse converts a domain income summary to a DTO.
func ToIncomeSummaryResponse(s *domain.IncomeSummary) IncomeSummaryResponse {
	return IncomeSummaryResponse{
		Total:         s.Total,
		CurrentMonth:  s.CurrentMonth,
		PreviousMonth: s.PreviousMonth,
		YearToDate:    s.YearToDate,
	}
}
