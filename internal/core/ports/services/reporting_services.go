package services

import (
	"context"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
)

// ReportingSvc defines the aggregate views computed by the ledger engine.
// The reference time is a parameter so reports are reproducible in tests.
type ReportingSvc interface {
	WalletSummary(ctx context.Context, requestingUserID string) (*domain.WalletSummary, error)
	MonthlySummary(ctx context.Context, requestingUserID string, ref time.Time) (*domain.MonthlySummary, error)
	IncomeSummary(ctx context.Context, requestingUserID string, ref time.Time) (*domain.IncomeSummary, error)
}
