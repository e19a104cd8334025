package models

import "time"

// APIToken mirrors the api_tokens table. Only the hash of a token's secret
// is stored; the plaintext is shown to the user once at generation time.
type APIToken struct {
	TokenID    string     `json:"tokenID"`
	UserID     string     `json:"userID"`
	TokenHash  string     `json:"-"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
