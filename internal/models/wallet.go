package models

// Wallet mirrors the wallets table. Balance is never a column; it is
// always recomputed from transactions.
type Wallet struct {
	WalletID string `json:"walletID"`
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	AuditFields
}
