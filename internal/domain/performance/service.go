package performance

import "context"

// PerformanceService defines the dashboard operations built on the aggregator
type PerformanceService interface {
	// GetMyPerformance returns the caller's own scorecard, earnings and payments.
	// week format: "YYYY-MM-DD", any day of the wanted week (default: current week)
	GetMyPerformance(ctx context.Context, week string) (*MyPerformanceResponse, error)

	// GetUserPerformance returns the admin view of one worker for a week
	GetUserPerformance(ctx context.Context, userID string, week string) (*UserPerformanceResponse, error)

	// GetUserPayments returns the payment list with any queued bonus merged in
	GetUserPayments(ctx context.Context, userID string) (*PaymentsViewResponse, error)

	// GetUserDetail returns the superadmin view: payments, lifetime totals and chart series
	GetUserDetail(ctx context.Context, userID string) (*UserDetailResponse, error)

	MarkWeekPaid(ctx context.Context, req MarkWeekPaidRequest) (*PaymentsViewResponse, error)
	AddBonus(ctx context.Context, req AddBonusRequest) (*PaymentsViewResponse, error)
	DenyPayment(ctx context.Context, req DenyPaymentRequest) (*PaymentResponse, error)
}
