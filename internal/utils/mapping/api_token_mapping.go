package mapping

import (
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	"github.com/FranzoniLeo/financial-control/internal/models"
)

// ToModelAPIToken converts a domain APIToken to a model APIToken.
func ToModelAPIToken(d domain.APIToken) models.APIToken {
	return models.APIToken{
		TokenID:    d.TokenID,
		UserID:     d.UserID,
		TokenHash:  d.TokenHash,
		LastUsedAt: d.LastUsedAt,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainAPIToken converts a model APIToken to a domain APIToken.
func ToDomainAPIToken(m models.APIToken) domain.APIToken {
	return domain.APIToken{
		TokenID:    m.TokenID,
		UserID:     m.UserID,
		TokenHash:  m.TokenHash,
		LastUsedAt: m.LastUsedAt,
		CreatedAt:  m.CreatedAt,
	}
}
