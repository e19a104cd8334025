package ledger_test

import (
	"testing"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarize_MonthlyScenario(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "100.00", "2024-03-01"),
		txn(domain.Withdrawal, "40.00", "2024-03-15"),
		txn(domain.Dividend, "5.50", "2024-04-02"),
	}

	s := ledger.Summarize(txns, ledger.CurrentMonth(date("2024-03-20")))

	assert.True(t, s.Deposits.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, s.Withdrawals.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, s.Dividends.IsZero())
	assert.True(t, s.NetIncome.Equal(decimal.RequireFromString("60.00")))
	assert.Equal(t, 2, s.Count)
}

func TestSummarize_EmptyIntervalYieldsZeros(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "100.00", "2024-03-01"),
	}
	// Start after End can only come from a caller bug; it must behave as
	// an empty window, not an error.
	iv := ledger.NewInterval(date("2024-04-01"), date("2024-03-01"))

	s := ledger.Summarize(txns, iv)

	assert.True(t, s.Deposits.IsZero())
	assert.True(t, s.Withdrawals.IsZero())
	assert.True(t, s.Dividends.IsZero())
	assert.True(t, s.NetIncome.IsZero())
	assert.Equal(t, 0, s.Count)
}

func TestSummarize_NoMatchingTransactions(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "100.00", "2023-06-01"),
	}

	s := ledger.Summarize(txns, ledger.CurrentMonth(date("2024-03-20")))

	assert.Equal(t, 0, s.Count)
	assert.True(t, s.NetIncome.IsZero())
}

func TestSummarize_IntervalBoundsAreInclusive(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "1.00", "2024-03-01"),
		txn(domain.Deposit, "2.00", "2024-03-31"),
		txn(domain.Deposit, "4.00", "2024-04-01"),
	}

	s := ledger.Summarize(txns, ledger.NewInterval(date("2024-03-01"), date("2024-03-31")))

	assert.True(t, s.Deposits.Equal(decimal.RequireFromString("3.00")))
	assert.Equal(t, 2, s.Count)
}

func TestCurrentMonth_IsCalendarMonthMatchNotMonthToDate(t *testing.T) {
	iv := ledger.CurrentMonth(date("2024-03-05"))

	assert.Equal(t, date("2024-03-01"), iv.Start)
	assert.Equal(t, date("2024-03-31"), iv.End)
	// Back-dated entries later in the month are still "current month".
	assert.True(t, iv.Contains(date("2024-03-28")))
}

func TestPreviousMonth_AcrossYearBoundary(t *testing.T) {
	iv := ledger.PreviousMonth(date("2024-01-15"))

	assert.Equal(t, date("2023-12-01"), iv.Start)
	assert.Equal(t, date("2023-12-31"), iv.End)
}

func TestPreviousMonth_MidYear(t *testing.T) {
	iv := ledger.PreviousMonth(date("2024-03-10"))

	assert.Equal(t, date("2024-02-01"), iv.Start)
	assert.Equal(t, date("2024-02-29"), iv.End) // leap year
}

func TestYearToDate(t *testing.T) {
	iv := ledger.YearToDate(date("2024-03-10"))

	assert.Equal(t, date("2024-01-01"), iv.Start)
	assert.Equal(t, date("2024-03-10"), iv.End)
}

func TestFilterByType_UnknownTypeYieldsEmptySet(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "1.00", "2024-01-01"),
		txn(domain.Withdrawal, "2.00", "2024-01-02"),
	}

	filtered := ledger.FilterByType(txns, domain.TransactionType("transfer"))

	assert.Empty(t, filtered)
}

func TestFilterByType_Narrows(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "1.00", "2024-01-01"),
		txn(domain.Withdrawal, "2.00", "2024-01-02"),
		txn(domain.Deposit, "3.00", "2024-01-03"),
	}

	filtered := ledger.FilterByType(txns, domain.Deposit)

	assert.Len(t, filtered, 2)
	for _, f := range filtered {
		assert.Equal(t, domain.Deposit, f.Type)
	}
}

func TestIsIncome_ComposedPredicate(t *testing.T) {
	walletDividend := txn(domain.Dividend, "5.00", "2024-01-01")

	walletDeposit := txn(domain.Deposit, "5.00", "2024-01-01")

	investmentDeposit := txn(domain.Deposit, "5.00", "2024-01-01")
	investmentDeposit.WalletID = ""
	investmentDeposit.InvestmentID = "inv-1"

	investmentDividend := txn(domain.Dividend, "5.00", "2024-01-01")
	investmentDividend.WalletID = ""
	investmentDividend.InvestmentID = "inv-1"

	assert.True(t, ledger.IsIncome(walletDividend))
	assert.True(t, ledger.IsIncome(investmentDeposit))
	assert.False(t, ledger.IsIncome(walletDeposit))
	assert.False(t, ledger.IsIncome(investmentDividend))
}
