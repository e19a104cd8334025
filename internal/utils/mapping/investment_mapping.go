package mapping

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment.
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID: d.InvestmentID,
		WalletID:     d.WalletID,
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID: m.InvestmentID,
		WalletID:     m.WalletID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestmentSlice converts model Investments to domain Investments.
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:       d.CategoryID,
		WalletID:         d.WalletID,
		Name:             d.Name,
		ParentCategoryID: d.ParentCategoryID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:       m.CategoryID,
		WalletID:         m.WalletID,
		Name:             m.Name,
		ParentCategoryID: m.ParentCategoryID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
