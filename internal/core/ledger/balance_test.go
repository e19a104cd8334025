package ledger_test

import (
	"testing"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(typ domain.TransactionType, amount string, date string) domain.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.Transaction{
		TransactionID: "txn-" + amount + "-" + date,
		WalletID:      "wallet-1",
		Amount:        decimal.RequireFromString(amount),
		Type:          typ,
		Date:          d,
	}
}

func TestBalance_EmptySetIsZero(t *testing.T) {
	assert.True(t, ledger.Balance(nil).IsZero())
	assert.True(t, ledger.Balance([]domain.Transaction{}).IsZero())
}

func TestBalance_DepositsMinusWithdrawalsPlusDividends(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "100.00", "2024-03-01"),
		txn(domain.Withdrawal, "40.00", "2024-03-15"),
		txn(domain.Dividend, "5.50", "2024-04-02"),
	}

	balance := ledger.Balance(txns)

	assert.True(t, balance.Equal(decimal.RequireFromString("65.50")),
		"expected 65.50, got %s", balance)
}

func TestBalance_MayBeNegative(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "10.00", "2024-01-01"),
		txn(domain.Withdrawal, "25.00", "2024-01-02"),
	}

	balance := ledger.Balance(txns)

	assert.True(t, balance.Equal(decimal.RequireFromString("-15.00")))
}

func TestBalance_NoRoundingDriftOverManyTransactions(t *testing.T) {
	// One million one-cent deposits must sum to exactly 10000.00.
	// Float arithmetic would drift here; decimal must not.
	cent := decimal.RequireFromString("0.01")
	txns := make([]domain.Transaction, 1_000_000)
	for i := range txns {
		txns[i] = domain.Transaction{
			WalletID: "wallet-1",
			Amount:   cent,
			Type:     domain.Deposit,
			Date:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	balance := ledger.Balance(txns)

	require.True(t, balance.Equal(decimal.RequireFromString("10000.00")),
		"expected exactly 10000.00, got %s", balance)
}

func TestBalance_Idempotent(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "123.45", "2024-02-01"),
		txn(domain.Dividend, "0.55", "2024-02-10"),
		txn(domain.Withdrawal, "24.00", "2024-02-20"),
	}

	first := ledger.Balance(txns)
	second := ledger.Balance(txns)

	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(decimal.RequireFromString("100.00")))
}

func TestInvestmentBalance_IgnoresDividends(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Deposit, "200.00", "2024-01-05"),
		txn(domain.Withdrawal, "50.00", "2024-01-10"),
		txn(domain.Dividend, "30.00", "2024-01-15"),
	}

	balance := ledger.InvestmentBalance(txns)

	assert.True(t, balance.Equal(decimal.RequireFromString("150.00")),
		"dividends must not affect an investment balance, got %s", balance)
}
