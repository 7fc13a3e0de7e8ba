package performance

import (
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type MarkWeekPaidRequest struct {
	UserID    string `json:"user_id" validate:"notblank"`
	WeekStart string `json:"week_start" validate:"required,datetime=2006-01-02"`
	WeekEnd   string `json:"week_end" validate:"required,datetime=2006-01-02"`
}

func (r *MarkWeekPaidRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	// One payment per Monday-Sunday week: the range must be exactly that week.
	start, _ := validator.IsValidDate(r.WeekStart)
	end, _ := validator.IsValidDate(r.WeekEnd)
	if start.Weekday() != time.Monday {
		return validator.ValidationErrors{
			{Field: "week_start", Message: "must be a Monday"},
		}
	}
	if !end.Equal(start.AddDate(0, 0, 6)) {
		return validator.ValidationErrors{
			{Field: "week_end", Message: "must be the Sunday of week_start's week"},
		}
	}
	return nil
}

type AddBonusRequest struct {
	UserID string `json:"-"`
	// Accepts a JSON number or a numeric string; anything else fails to decode.
	Amount json.Number `json:"amount" validate:"required,numeric"`
	Reason string      `json:"reason" validate:"notblank,max=500"`
}

func (r *AddBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	} else if !r.Decimal().IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Decimal returns the parsed amount, zero when it does not parse
func (r *AddBonusRequest) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

type DenyPaymentRequest struct {
	UserID    string `json:"-"`
	PaymentID string `json:"-"`
	Reason    string `json:"reason" validate:"notblank,max=500"`
}

func (r *DenyPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PaymentID) {
		errs = append(errs, validator.ValidationError{Field: "payment_id", Message: "is required"})
	}
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type PaymentResponse struct {
	ID               string          `json:"id"`
	WeekStart        string          `json:"week_start,omitempty"`
	WeekEnd          string          `json:"week_end,omitempty"`
	WeekNumber       int             `json:"week_number,omitempty"`
	Year             int             `json:"year,omitempty"`
	TotalHours       float64         `json:"total_hours"`
	AvgQuality       float64         `json:"avg_quality"`
	EntryCount       int             `json:"entry_count"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	ExtraBonus       decimal.Decimal `json:"extra_bonus"`
	ExtraBonusReason string          `json:"extra_bonus_reason,omitempty"`
	PaymentType      PaymentType     `json:"payment_type,omitempty"`
	Status           PaymentStatus   `json:"status"`
	Paid             bool            `json:"paid"`
	Queued           bool            `json:"queued"`
	DenialReason     string          `json:"denial_reason,omitempty"`
}

func NewPaymentResponse(p WeeklyPayment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		WeekStart:        p.WeekStart,
		WeekEnd:          p.WeekEnd,
		WeekNumber:       p.WeekNumber,
		Year:             p.Year,
		TotalHours:       p.TotalHours,
		AvgQuality:       p.AvgQuality,
		EntryCount:       p.EntryCount,
		TotalEarnings:    p.TotalEarnings,
		ExtraBonus:       p.ExtraBonus,
		ExtraBonusReason: p.ExtraBonusReason,
		PaymentType:      p.PaymentType,
		Status:           p.Status,
		Paid:             p.IsPaid(),
		Queued:           p.IsPendingBonus(),
		DenialReason:     p.DenialReason,
	}
}

type UserResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name,omitempty"`
	Email            string          `json:"email,omitempty"`
	Role             string          `json:"role,omitempty"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	ExtraBonus       decimal.Decimal `json:"extra_bonus"`
	ExtraBonusReason string          `json:"extra_bonus_reason,omitempty"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		HourlyRate:       u.HourlyRate,
		ExtraBonus:       u.ExtraBonus,
		ExtraBonusReason: u.ExtraBonusReason,
	}
}

// PaymentsViewResponse is the payment list as every dashboard shows it
type PaymentsViewResponse struct {
	UserID      string            `json:"user_id"`
	Payments    []PaymentResponse `json:"payments"`
	Lifetime    Snapshot          `json:"lifetime"`
	UnpaidTotal decimal.Decimal   `json:"unpaid_total"`
	QueuedBonus decimal.Decimal   `json:"queued_bonus"`
}

// MyPerformanceResponse is the worker self view
type MyPerformanceResponse struct {
	WeekStart  string               `json:"week_start"`
	WeekEnd    string               `json:"week_end"`
	HourlyRate decimal.Decimal      `json:"hourly_rate"`
	Scorecard  Scorecard            `json:"scorecard"`
	Payments   PaymentsViewResponse `json:"payments"`
}

// UserPerformanceResponse is the admin view of one worker
type UserPerformanceResponse struct {
	User      UserResponse         `json:"user"`
	WeekStart string               `json:"week_start"`
	WeekEnd   string               `json:"week_end"`
	Scorecard Scorecard            `json:"scorecard"`
	Payments  PaymentsViewResponse `json:"payments"`
}

// UserDetailResponse is the superadmin view of one worker
type UserDetailResponse struct {
	User     UserResponse         `json:"user"`
	Payments PaymentsViewResponse `json:"payments"`
	Chart    []ChartPoint         `json:"chart"`
}
