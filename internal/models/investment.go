package models

// Category mirrors the categories table.
type Category struct {
	CategoryID       string `json:"categoryID"`
	WalletID         string `json:"walletID"`
	Name             string `json:"name"`
	ParentCategoryID string `json:"parentCategoryID"`
	AuditFields
}

// Investment mirrors the investments table.
type Investment struct {
	InvestmentID string `json:"investmentID"`
	WalletID     string `json:"walletID"`
	CategoryID   string `json:"categoryID"`
	Name         string `json:"name"`
	AuditFields
}
