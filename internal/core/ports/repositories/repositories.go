package repositories

// RepositoryProvider aggregates every repository implementation the
// application needs. It is assembled once at startup and handed to the
// service container.
type RepositoryProvider struct {
	UserRepo        UserRepository
	WalletRepo      WalletRepository
	TransactionRepo TransactionRepository
	InvestmentRepo  InvestmentRepository
	APITokenRepo    APITokenRepository
}
