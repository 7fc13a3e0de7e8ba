package performance

import (
	"context"

	"github.com/shopspring/decimal"
)

// OwnDashboard - Raw data behind the worker self view.
type OwnDashboard struct {
	User     User
	Entries  []Entry
	Payments []WeeklyPayment
}

// UserStats - Raw data behind the admin view of one worker.
type UserStats struct {
	User    User
	Entries []Entry
}

// PerformanceRepository defines data access for performance data.
// Every call is authorised with the caller's session carried on ctx.
type PerformanceRepository interface {
	GetOwnDashboard(ctx context.Context) (OwnDashboard, error)
	GetUserStats(ctx context.Context, userID string) (UserStats, error)
	ListWeeklyPayments(ctx context.Context, userID string) ([]WeeklyPayment, error)

	// Mutations
	MarkWeekPaid(ctx context.Context, userID, weekStart, weekEnd string) (WeeklyPayment, error)
	AddBonus(ctx context.Context, userID string, amount decimal.Decimal, reason string) (User, error)
	DenyPayment(ctx context.Context, paymentID, reason string) (WeeklyPayment, error)
}
