package domain

import "time"

// User represents an account holder. Every wallet belongs to exactly one user.
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never expose the hash in JSON responses
	AuditFields
	DeletedAt *time.Time `json:"-"`
}
