package performance

import (
	"github.com/shopspring/decimal"
)

// PendingBonusID is the id of the synthetic payment row that represents a
// bonus not yet attached to any weekly payment.
const PendingBonusID = "pending-bonus"

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentType enum
type PaymentType string

const (
	PaymentTypeWeekly PaymentType = "weekly"
	PaymentTypeBonus  PaymentType = "bonus"
)

// Tier is a coarse performance bucket derived from the overall score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierBelow     Tier = "below"
)

// Entry - One worker-day record as returned by the upstream API.
// Date is kept as the raw string; it is interpreted as a local calendar day.
type Entry struct {
	ID               string   `json:"_id"`
	UserID           string   `json:"userId,omitempty"`
	Date             string   `json:"date"`
	Time             float64  `json:"time"`
	Quality          float64  `json:"quality"`
	EffectiveTime    *float64 `json:"effectiveTime,omitempty"`
	EffectiveQuality *float64 `json:"effectiveQuality,omitempty"`
	AdminApproved    bool     `json:"adminApproved"`
	Notes            string   `json:"notes,omitempty"`
}

// Hours returns the admin-corrected time when present, else the reported time.
func (e Entry) Hours() float64 {
	if e.EffectiveTime != nil {
		return *e.EffectiveTime
	}
	return e.Time
}

// Score returns the admin-corrected quality when present, else the reported quality.
func (e Entry) Score() float64 {
	if e.EffectiveQuality != nil {
		return *e.EffectiveQuality
	}
	return e.Quality
}

// WeeklyPayment - One worker-week settlement record.
type WeeklyPayment struct {
	ID               string          `json:"_id"`
	UserID           string          `json:"userId,omitempty"`
	WeekStart        string          `json:"weekStart"`
	WeekEnd          string          `json:"weekEnd"`
	WeekNumber       int             `json:"weekNumber"`
	Year             int             `json:"year"`
	TotalHours       float64         `json:"totalHours"`
	AvgQuality       float64         `json:"avgQuality"`
	EntryCount       int             `json:"entryCount"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	ExtraBonus       decimal.Decimal `json:"extraBonus"`
	ExtraBonusReason string          `json:"extraBonusReason,omitempty"`
	PaymentType      PaymentType     `json:"paymentType,omitempty"`
	Status           PaymentStatus   `json:"status"`
	Paid             bool            `json:"paid"`
	DenialReason     string          `json:"denialReason,omitempty"`
}

// IsPaid reports whether the payment is settled. The legacy paid flag and
// the status are both honoured.
func (p WeeklyPayment) IsPaid() bool {
	return p.Paid || p.Status == PaymentStatusPaid
}

// IsDenied checks if the payment was denied
func (p WeeklyPayment) IsDenied() bool {
	return p.Status == PaymentStatusDenied
}

// IsUnpaid checks if the payment still counts towards the outstanding total
func (p WeeklyPayment) IsUnpaid() bool {
	return !p.IsPaid() && !p.IsDenied()
}

// IsPendingBonus checks if this is the synthetic queued-bonus row
func (p WeeklyPayment) IsPendingBonus() bool {
	return p.ID == PendingBonusID
}

// User - The subset of the upstream user record the aggregator needs.
type User struct {
	ID               string          `json:"_id"`
	Name             string          `json:"name,omitempty"`
	Email            string          `json:"email,omitempty"`
	Role             string          `json:"role,omitempty"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	ExtraBonus       decimal.Decimal `json:"extraBonus"`
	ExtraBonusReason string          `json:"extraBonusReason,omitempty"`
}

// Snapshot - Derived totals for a weekly or lifetime scope.
type Snapshot struct {
	TotalHours    float64         `json:"total_hours"`
	AvgQuality    float64         `json:"avg_quality"`
	EntryCount    int             `json:"entry_count"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

// Scorecard - Weekly snapshot plus the combined score shown on every dashboard.
type Scorecard struct {
	Weekly         Snapshot `json:"weekly"`
	DaysWorked     int      `json:"days_worked"`
	ExpectedHours  float64  `json:"expected_hours"`
	TimePercentage float64  `json:"time_percentage"`
	BarWidth       float64  `json:"bar_width"`
	Score          float64  `json:"score"`
	Tier           Tier     `json:"tier"`
}

// ChartPoint - One week of paid work in the superadmin chart.
type ChartPoint struct {
	WeekStart  string          `json:"week_start"`
	Hours      float64         `json:"hours"`
	AvgQuality float64         `json:"avg_quality"`
	Earnings   decimal.Decimal `json:"earnings"`
}
