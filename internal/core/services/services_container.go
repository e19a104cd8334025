package services

import (
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
// Called once at startup.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Wallet:      NewWalletService(repos.WalletRepo, repos.TransactionRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.WalletRepo, repos.InvestmentRepo),
		Investment:  NewInvestmentService(repos.InvestmentRepo, repos.WalletRepo, repos.TransactionRepo),
		Reporting:   NewReportingService(repos.WalletRepo, repos.TransactionRepo),
		APIToken:    NewAPITokenService(repos.APITokenRepo),
	}
}
