package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the persisted transaction kind.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Dividend   TransactionType = "dividend"
)

// Transaction mirrors the transactions table. Exactly one of WalletID and
// InvestmentID is set; the table enforces this with a CHECK constraint.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	WalletID      string          `json:"walletID"`
	InvestmentID  string          `json:"investmentID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	AuditFields
}
