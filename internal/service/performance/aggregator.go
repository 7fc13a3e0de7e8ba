package performance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// Weighting of the overall score. The same rule is used for every view.
const (
	QualityWeight = 0.7
	TimeWeight    = 0.3

	// StandardDayHours is the expected length of one worked day.
	StandardDayHours = 8
)

// Tier thresholds, evaluated highest first.
const (
	ExcellentThreshold = 80
	GoodThreshold      = 70
	AverageThreshold   = 60
)

// finite coerces NaN and ±Inf to 0.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// approvedInWeek returns the approved entries whose calendar date lies in
// weekAnchor's Monday-Sunday week, together with their parsed dates.
// Dates are read in weekAnchor's location.
func approvedInWeek(entries []performance.Entry, weekAnchor time.Time) ([]performance.Entry, []time.Time) {
	var (
		matched []performance.Entry
		days    []time.Time
	)
	for _, e := range entries {
		if !e.AdminApproved {
			continue
		}
		day, ok := utils.ParseLocalDate(e.Date, weekAnchor.Location())
		if !ok || !utils.InWeek(day, weekAnchor) {
			continue
		}
		matched = append(matched, e)
		days = append(days, day)
	}
	return matched, days
}

// WeeklyTotals sums the approved entries of weekAnchor's week.
// Admin-corrected values take precedence over reported ones. TotalEarnings is
// left at zero: combine with Earnings when the hourly rate is known.
func WeeklyTotals(entries []performance.Entry, weekAnchor time.Time) performance.Snapshot {
	matched, _ := approvedInWeek(entries, weekAnchor)

	// Decimal accumulators keep the sums independent of entry order.
	hours := decimal.Zero
	quality := decimal.Zero
	for _, e := range matched {
		hours = hours.Add(decimal.NewFromFloat(finite(e.Hours())))
		quality = quality.Add(decimal.NewFromFloat(finite(e.Score())))
	}

	snapshot := performance.Snapshot{
		TotalHours:    hours.InexactFloat64(),
		EntryCount:    len(matched),
		TotalEarnings: decimal.Zero,
	}
	if len(matched) > 0 {
		snapshot.AvgQuality = quality.Div(decimal.NewFromInt(int64(len(matched)))).InexactFloat64()
	}
	return snapshot
}

// DaysWorked counts the distinct calendar days with an approved entry in
// weekAnchor's week.
func DaysWorked(entries []performance.Entry, weekAnchor time.Time) int {
	_, days := approvedInWeek(entries, weekAnchor)
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		seen[utils.FormatDate(d)] = struct{}{}
	}
	return len(seen)
}

// ExpectedHours is the number of hours expected for daysWorked days.
func ExpectedHours(daysWorked int) float64 {
	if daysWorked <= 0 {
		return 0
	}
	return float64(daysWorked * StandardDayHours)
}

// TimePercentage is totalHours as a percentage of expectedHours. It is not
// capped at 100 and is 0 when nothing was expected.
func TimePercentage(totalHours, expectedHours float64) float64 {
	expectedHours = finite(expectedHours)
	if expectedHours <= 0 {
		return 0
	}
	return finite(totalHours) / expectedHours * 100
}

// BarWidth clamps a percentage to [0, 100] for progress bars. Scores are
// never clamped, only their bar.
func BarWidth(percentage float64) float64 {
	return math.Max(0, math.Min(100, finite(percentage)))
}

// OverallPerformance combines quality and time into one score:
// quality*0.7 + timePercentage*0.3.
func OverallPerformance(avgQuality, totalHours, expectedHours float64) float64 {
	return finite(avgQuality)*QualityWeight + TimePercentage(totalHours, expectedHours)*TimeWeight
}

// PerformanceTier buckets a score into one of four bands. Any value,
// including out-of-range ones, classifies; NaN falls into TierBelow.
func PerformanceTier(score float64) performance.Tier {
	switch {
	case score >= ExcellentThreshold:
		return performance.TierExcellent
	case score >= GoodThreshold:
		return performance.TierGood
	case score >= AverageThreshold:
		return performance.TierAverage
	default:
		return performance.TierBelow
	}
}

// LifetimeTotals sums every paid weekly payment. AvgQuality is weighted by
// each week's entry count.
func LifetimeTotals(payments []performance.WeeklyPayment) performance.Snapshot {
	hours := decimal.Zero
	weightedQuality := decimal.Zero
	earnings := decimal.Zero
	entryCount := 0

	for _, p := range payments {
		if !p.IsPaid() {
			continue
		}
		hours = hours.Add(decimal.NewFromFloat(finite(p.TotalHours)))
		weightedQuality = weightedQuality.Add(
			decimal.NewFromFloat(finite(p.AvgQuality)).Mul(decimal.NewFromInt(int64(p.EntryCount))),
		)
		earnings = earnings.Add(p.TotalEarnings)
		entryCount += p.EntryCount
	}

	snapshot := performance.Snapshot{
		TotalHours:    hours.InexactFloat64(),
		EntryCount:    entryCount,
		TotalEarnings: earnings,
	}
	if entryCount != 0 {
		snapshot.AvgQuality = weightedQuality.Div(decimal.NewFromInt(int64(entryCount))).InexactFloat64()
	}
	return snapshot
}

// MergePendingBonus prepends a synthetic "pending-bonus" row when u has an
// outstanding bonus that no unpaid bonus payment carries yet. payments is
// never modified; when nothing is queued it is returned as is.
func MergePendingBonus(u performance.User, payments []performance.WeeklyPayment) []performance.WeeklyPayment {
	if !u.ExtraBonus.IsPositive() {
		return payments
	}
	for _, p := range payments {
		if p.PaymentType == performance.PaymentTypeBonus && !p.Paid {
			return payments
		}
	}

	merged := make([]performance.WeeklyPayment, 0, len(payments)+1)
	merged = append(merged, pendingBonusRow(u))
	return append(merged, payments...)
}

func pendingBonusRow(u performance.User) performance.WeeklyPayment {
	return performance.WeeklyPayment{
		ID:               performance.PendingBonusID,
		UserID:           u.ID,
		TotalEarnings:    u.ExtraBonus,
		ExtraBonus:       u.ExtraBonus,
		ExtraBonusReason: u.ExtraBonusReason,
		PaymentType:      performance.PaymentTypeBonus,
		Status:           performance.PaymentStatusPending,
		Paid:             false,
	}
}

// UnpaidTotal sums the earnings of payments that are neither paid nor denied.
func UnpaidTotal(payments []performance.WeeklyPayment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.IsUnpaid() {
			total = total.Add(p.TotalEarnings)
		}
	}
	return total
}

// Earnings is hours*hourlyRate + extraBonus. No performance multiplier applies.
func Earnings(hours float64, hourlyRate, extraBonus decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(finite(hours)).Mul(hourlyRate).Add(extraBonus)
}

// BuildScorecard computes the weekly snapshot, weekly earnings at hourlyRate
// and the combined score for weekAnchor's week.
func BuildScorecard(entries []performance.Entry, weekAnchor time.Time, hourlyRate decimal.Decimal) performance.Scorecard {
	weekly := WeeklyTotals(entries, weekAnchor)
	weekly.TotalEarnings = Earnings(weekly.TotalHours, hourlyRate, decimal.Zero)

	days := DaysWorked(entries, weekAnchor)
	expected := ExpectedHours(days)
	percentage := TimePercentage(weekly.TotalHours, expected)
	score := OverallPerformance(weekly.AvgQuality, weekly.TotalHours, expected)

	return performance.Scorecard{
		Weekly:         weekly,
		DaysWorked:     days,
		ExpectedHours:  expected,
		TimePercentage: percentage,
		BarWidth:       BarWidth(percentage),
		Score:          score,
		Tier:           PerformanceTier(score),
	}
}

var transitions = map[performance.PaymentStatus][]performance.PaymentStatus{
	performance.PaymentStatusPending:  {performance.PaymentStatusApproved, performance.PaymentStatusPaid, performance.PaymentStatusDenied},
	performance.PaymentStatusApproved: {performance.PaymentStatusPaid},
}

// CanTransition reports whether a payment may move from one status to
// another. Paid and denied are terminal.
func CanTransition(from, to performance.PaymentStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
