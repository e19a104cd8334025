package ledger

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Predicate selects transactions for filtering.
type Predicate func(domain.Transaction) bool

// Filter returns the transactions matching pred, preserving input order.
func Filter(txns []domain.Transaction, pred Predicate) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if pred(txn) {
			out = append(out, txn)
		}
	}
	return out
}

// FilterByType narrows a transaction set to a single type. The filter is
// total: an unrecognized type value yields an empty result, not an error.
func FilterByType(txns []domain.Transaction, t domain.TransactionType) []domain.Transaction {
	return Filter(txns, func(txn domain.Transaction) bool {
		return txn.Type == t
	})
}

// IsIncome is the composed income predicate: a transaction counts as income
// when it is a deposit into an investment or a dividend on a wallet. It is
// evaluated once per transaction over the owned set, so an entry can never
// be double-counted the way merging two separately filtered sets could.
func IsIncome(txn domain.Transaction) bool {
	return (txn.BelongsToInvestment() && txn.Type == domain.Deposit) ||
		(txn.BelongsToWallet() && txn.Type == domain.Dividend)
}

// SumAmounts adds up the raw amounts of a transaction set.
func SumAmounts(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.Amount)
	}
	return sum
}
