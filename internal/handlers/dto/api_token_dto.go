package dto

import (
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// APITokenResponse represents an API token in API responses. The plaintext
// token itself never appears here.
type APITokenResponse struct {
	TokenID    string     `json:"tokenID"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPITokenResponse is returned when a token is generated or
// regenerated. Token is the plaintext and is shown exactly once.
type CreateAPITokenResponse struct {
	Token   string           `json:"token"`
	Details APITokenResponse `json:"details"`
}

// ToAPITokenResponse converts a domain APIToken to its response form.
func ToAPITokenResponse(t *domain.APIToken) APITokenResponse {
	return APITokenResponse{
		TokenID:    t.TokenID,
		LastUsedAt: t.LastUsedAt,
		CreatedAt:  t.CreatedAt,
	}
}
