package domain

// Category groups investments within a wallet. Categories may nest via
// ParentCategoryID, always within the same wallet.
type Category struct {
	CategoryID       string `json:"categoryID"` // Primary Key (e.g., UUID)
	WalletID         string `json:"walletID"`   // FK -> wallets.wallet_id (NON-NULL)
	Name             string `json:"name"`
	ParentCategoryID string `json:"parentCategoryID"` // Nullable FK -> categories.category_id
	AuditFields
}

// Investment is a sub-container of a wallet that transactions may belong to
// instead of the wallet itself. It carries no balance state of its own; its
// balance is derived from its transactions.
type Investment struct {
	InvestmentID string `json:"investmentID"` // Primary Key (e.g., UUID)
	WalletID     string `json:"walletID"`     // FK -> wallets.wallet_id (NON-NULL)
	CategoryID   string `json:"categoryID"`   // FK -> categories.category_id (NON-NULL)
	Name         string `json:"name"`
	AuditFields
}
