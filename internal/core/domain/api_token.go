package domain

import "time"

// APIToken authenticates API requests without a login session. A user holds
// at most one token; regenerating replaces it. The plaintext secret is
// never stored, only its hash.
type APIToken struct {
	TokenID    string     `json:"tokenID"` // Primary Key (e.g., UUID)
	UserID     string     `json:"userID"`  // FK -> users.user_id
	TokenHash  string     `json:"-"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
