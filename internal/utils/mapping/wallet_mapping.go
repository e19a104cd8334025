package mapping

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet.
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:    d.WalletID,
		UserID:      d.UserID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:    m.WalletID,
		UserID:      m.UserID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletSlice converts a slice of model Wallets to domain Wallets.
func ToDomainWalletSlice(ms []models.Wallet) []domain.Wallet {
	ds := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWallet(m)
	}
	return ds
}
