package pgsql

import (
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider assembles every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		WalletRepo:      newPgxWalletRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		InvestmentRepo:  newPgxInvestmentRepository(dbPool),
		APITokenRepo:    newPgxAPITokenRepository(dbPool),
	}
}
