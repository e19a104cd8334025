package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed enumeration of ledger entry kinds.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Dividend   TransactionType = "dividend"
)

// IsValid reports whether t is one of the three known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Deposit, Withdrawal, Dividend:
		return true
	}
	return false
}

// Transaction is an atomic ledger entry. It belongs to exactly one parent
// container: either a wallet (WalletID set) or an investment (InvestmentID
// set), never both and never neither.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	WalletID      string          `json:"walletID"`      // Nullable FK -> wallets.wallet_id
	InvestmentID  string          `json:"investmentID"`  // Nullable FK -> investments.investment_id
	Amount        decimal.Decimal `json:"amount"`        // Non-negative magnitude, two fractional digits
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"` // Calendar date the transaction occurred, distinct from CreatedAt
	Description   string          `json:"description"`
	AuditFields
}

// BelongsToWallet reports whether the transaction's parent is a wallet.
func (t Transaction) BelongsToWallet() bool {
	return t.WalletID != ""
}

// BelongsToInvestment reports whether the transaction's parent is an investment.
func (t Transaction) BelongsToInvestment() bool {
	return t.InvestmentID != ""
}
