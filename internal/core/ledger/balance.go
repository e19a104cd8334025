// Package ledger contains the aggregation engine: pure, stateless
// computations that turn a set of transactions into balances and period
// summaries. Inputs are assumed to be pre-scoped to a single user by the
// caller; no ownership logic lives here. All money math uses
// decimal.Decimal so repeated summation never drifts.
package ledger

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Balance computes the derived balance of a container's transactions:
// deposits − withdrawals + dividends. An empty set yields zero. The result
// may legitimately be negative when withdrawals exceed the rest.
func Balance(txns []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Deposit, domain.Dividend:
			balance = balance.Add(txn.Amount)
		case domain.Withdrawal:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// InvestmentBalance computes the balance of an investment's transactions:
// deposits − withdrawals. Dividend lines do not contribute; dividends on an
// investment are reported through income summaries, not its balance.
func InvestmentBalance(txns []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Deposit:
			balance = balance.Add(txn.Amount)
		case domain.Withdrawal:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}
