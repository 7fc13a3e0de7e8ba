package restapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

type performanceRepository struct {
	client *upstream.Client
}

func NewPerformanceRepository(client *upstream.Client) performance.PerformanceRepository {
	return &performanceRepository{client: client}
}

func (r *performanceRepository) GetOwnDashboard(ctx context.Context) (performance.OwnDashboard, error) {
	resp, err := r.client.GetDashboard(ctx)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return performance.OwnDashboard{}, performance.ErrUserNotFound
		}
		return performance.OwnDashboard{}, fmt.Errorf("failed to get dashboard: %w", err)
	}

	return performance.OwnDashboard{
		User: performance.User{
			ID:               resp.Summary.UserID,
			Name:             resp.Summary.Name,
			HourlyRate:       resp.Summary.HourlyRate,
			ExtraBonus:       resp.Summary.ExtraBonus,
			ExtraBonusReason: resp.Summary.ExtraBonusReason,
		},
		Entries:  resp.DailyData,
		Payments: resp.WeeklyData,
	}, nil
}

func (r *performanceRepository) GetUserStats(ctx context.Context, userID string) (performance.UserStats, error) {
	resp, err := r.client.GetUserStats(ctx, userID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return performance.UserStats{}, performance.ErrUserNotFound
		}
		return performance.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}

	u := resp.User
	if u.ID == "" {
		u.ID = userID
	}
	return performance.UserStats{User: u, Entries: resp.Weekly.Entries}, nil
}

// ListWeeklyPayments returns an empty list when the backend has no payment
// collection for the user.
func (r *performanceRepository) ListWeeklyPayments(ctx context.Context, userID string) ([]performance.WeeklyPayment, error) {
	payments, err := r.client.ListWeeklyPayments(ctx, userID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return []performance.WeeklyPayment{}, nil
		}
		return nil, fmt.Errorf("failed to list weekly payments: %w", err)
	}
	if payments == nil {
		payments = []performance.WeeklyPayment{}
	}
	return payments, nil
}

func (r *performanceRepository) MarkWeekPaid(ctx context.Context, userID, weekStart, weekEnd string) (performance.WeeklyPayment, error) {
	payment, err := r.client.MarkWeekPaid(ctx, upstream.MarkWeekPaidBody{
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	})
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return performance.WeeklyPayment{}, performance.ErrPaymentNotFound
		}
		return performance.WeeklyPayment{}, fmt.Errorf("failed to mark week paid: %w", err)
	}
	return payment, nil
}

func (r *performanceRepository) AddBonus(ctx context.Context, userID string, amount decimal.Decimal, reason string) (performance.User, error) {
	u, err := r.client.AddBonus(ctx, userID, upstream.NewBonusBody(amount, reason))
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return performance.User{}, performance.ErrUserNotFound
		}
		return performance.User{}, fmt.Errorf("failed to add bonus: %w", err)
	}
	if u.ID == "" {
		u.ID = userID
	}
	return u, nil
}

func (r *performanceRepository) DenyPayment(ctx context.Context, paymentID, reason string) (performance.WeeklyPayment, error) {
	payment, err := r.client.DenyPayment(ctx, paymentID, upstream.DenyBody{Reason: reason})
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return performance.WeeklyPayment{}, performance.ErrPaymentNotFound
		}
		return performance.WeeklyPayment{}, fmt.Errorf("failed to deny payment: %w", err)
	}
	return payment, nil
}
