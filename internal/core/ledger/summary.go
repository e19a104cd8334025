package ledger

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the four figures of a period summary plus the number of
// transactions considered. Deposits, withdrawals and dividends are summed
// independently, never netted against each other; NetIncome is the only
// derived figure.
type Summary struct {
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Dividends   decimal.Decimal `json:"dividends"`
	NetIncome   decimal.Decimal `json:"netIncome"`
	Count       int             `json:"count"`
}

// Summarize computes the per-type sums over the transactions whose date
// falls inside the interval. An empty interval (Start after End, possible
// only through a caller bug such as a misconfigured month boundary) yields
// all-zero sums rather than an error.
func Summarize(txns []domain.Transaction, iv Interval) Summary {
	s := Summary{
		Deposits:    decimal.Zero,
		Withdrawals: decimal.Zero,
		Dividends:   decimal.Zero,
	}
	for _, txn := range txns {
		if !iv.Contains(txn.Date) {
			continue
		}
		switch txn.Type {
		case domain.Deposit:
			s.Deposits = s.Deposits.Add(txn.Amount)
		case domain.Withdrawal:
			s.Withdrawals = s.Withdrawals.Add(txn.Amount)
		case domain.Dividend:
			s.Dividends = s.Dividends.Add(txn.Amount)
		}
		s.Count++
	}
	s.NetIncome = s.Deposits.Add(s.Dividends).Sub(s.Withdrawals)
	return s
}
