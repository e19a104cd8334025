package domain

import (
	"github.com/shopspring/decimal"
)

// WalletBalance pairs a wallet with its derived balance.
type WalletBalance struct {
	Wallet  Wallet          `json:"wallet"`
	Balance decimal.Decimal `json:"balance"`
}

// WalletSummary is the dashboard rollup over every wallet a user owns.
type WalletSummary struct {
	TotalWallets int             `json:"totalWallets"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Wallets      []WalletBalance `json:"wallets"`
}

// MonthlySummary reports the per-type sums for one calendar month.
type MonthlySummary struct {
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	Deposits          decimal.Decimal `json:"deposits"`
	Withdrawals       decimal.Decimal `json:"withdrawals"`
	Dividends         decimal.Decimal `json:"dividends"`
	NetIncome         decimal.Decimal `json:"netIncome"`
	TotalTransactions int             `json:"totalTransactions"`
}

// IncomeSummary reports income (investment deposits plus wallet dividends)
// over the standard reporting windows.
type IncomeSummary struct {
	Total         decimal.Decimal `json:"total"`
	CurrentMonth  decimal.Decimal `json:"currentMonth"`
	PreviousMonth decimal.Decimal `json:"previousMonth"`
	YearToDate    decimal.Decimal `json:"yearToDate"`
}
