package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/shopspring/decimal"
)

// DashboardSummary is the part of GET /user/dashboard "summary" the
// aggregator needs; the rest of the object is ignored.
type DashboardSummary struct {
	UserID           string          `json:"userId"`
	Name             string          `json:"name"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	ExtraBonus       decimal.Decimal `json:"extraBonus"`
	ExtraBonusReason string          `json:"extraBonusReason"`
}

// DashboardResponse is the body of GET /user/dashboard
type DashboardResponse struct {
	Summary    DashboardSummary            `json:"summary"`
	Earnings   json.RawMessage             `json:"earnings"`
	WeeklyData []performance.WeeklyPayment `json:"weeklyData"`
	DailyData  []performance.Entry         `json:"dailyData"`
}

// UserStatsResponse is the body of GET /admin/users/:id/stats.
// Lifetime is computed server side and kept only as raw JSON.
type UserStatsResponse struct {
	Lifetime json.RawMessage `json:"lifetime"`
	Weekly   struct {
		Entries []performance.Entry `json:"entries"`
	} `json:"weekly"`
	User performance.User `json:"user"`
}

// MarkWeekPaidBody is the body of PUT /payments/mark-week-paid
type MarkWeekPaidBody struct {
	UserID    string `json:"userId"`
	WeekStart string `json:"weekStart"`
	WeekEnd   string `json:"weekEnd"`
}

// BonusBody is the body of PUT /superadmin/bonus/:id.
// Amount is sent as a bare JSON number.
type BonusBody struct {
	Amount json.Number `json:"amount"`
	Reason string      `json:"reason"`
}

// NewBonusBody builds a BonusBody from a decimal amount
func NewBonusBody(amount decimal.Decimal, reason string) BonusBody {
	return BonusBody{Amount: json.Number(amount.String()), Reason: reason}
}

// DenyBody is the body of PUT /superadmin/payments/:id/deny
type DenyBody struct {
	Reason string `json:"reason"`
}

// GetDashboard fetches the caller's own dashboard data
func (c *Client) GetDashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := c.Do(ctx, http.MethodGet, "/user/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserStats fetches one worker's stats for the admin view
func (c *Client) GetUserStats(ctx context.Context, userID string) (*UserStatsResponse, error) {
	var out UserStatsResponse
	if err := c.Do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID)+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWeeklyPayments fetches every weekly payment of a worker
func (c *Client) ListWeeklyPayments(ctx context.Context, userID string) ([]performance.WeeklyPayment, error) {
	var out []performance.WeeklyPayment
	if err := c.Do(ctx, http.MethodGet, "/payments/users/"+url.PathEscape(userID)+"/weekly-payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkWeekPaid settles a worker's week
func (c *Client) MarkWeekPaid(ctx context.Context, body MarkWeekPaidBody) (performance.WeeklyPayment, error) {
	var out performance.WeeklyPayment
	if err := c.Do(ctx, http.MethodPut, "/payments/mark-week-paid", body, &out); err != nil {
		return performance.WeeklyPayment{}, err
	}
	return out, nil
}

// AddBonus adds amount to the worker's outstanding extra bonus
func (c *Client) AddBonus(ctx context.Context, userID string, body BonusBody) (performance.User, error) {
	var out performance.User
	if err := c.Do(ctx, http.MethodPut, "/superadmin/bonus/"+url.PathEscape(userID), body, &out); err != nil {
		return performance.User{}, err
	}
	return out, nil
}

// DenyPayment moves a payment to the denied status
func (c *Client) DenyPayment(ctx context.Context, paymentID string, body DenyBody) (performance.WeeklyPayment, error) {
	var out performance.WeeklyPayment
	if err := c.Do(ctx, http.MethodPut, "/superadmin/payments/"+url.PathEscape(paymentID)+"/deny", body, &out); err != nil {
		return performance.WeeklyPayment{}, err
	}
	return out, nil
}
