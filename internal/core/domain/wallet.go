package domain

// Wallet is the top-level container for a user's transactions.
// Its balance is always derived from its transactions and never stored.
type Wallet struct {
	WalletID string `json:"walletID"` // Primary Key (e.g., UUID)
	UserID   string `json:"userID"`   // FK -> users.user_id; the single owner
	Name     string `json:"name"`     // User-defined name, <= 100 chars
	AuditFields
}

// MaxWalletNameLength is the upper bound for a wallet display name.
const MaxWalletNameLength = 100
