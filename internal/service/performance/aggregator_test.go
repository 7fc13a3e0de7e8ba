package performance

import (
	"math"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}

// Week of Monday 2026-02-16.
func sampleEntries() []performance.Entry {
	return []performance.Entry{
		{ID: "mon", Date: "2026-02-16", Time: 8, Quality: 90, AdminApproved: true},
		{ID: "wed", Date: "2026-02-18", Time: 6, Quality: 70, AdminApproved: true},
		{ID: "thu", Date: "2026-02-19", Time: 5, Quality: 50, AdminApproved: false},
	}
}

func TestWeeklyTotals_Scenario(t *testing.T) {
	got := WeeklyTotals(sampleEntries(), day(t, "2026-02-18"))

	assert.Equal(t, 14.0, got.TotalHours)
	assert.Equal(t, 80.0, got.AvgQuality)
	assert.Equal(t, 2, got.EntryCount)
	assert.True(t, got.TotalEarnings.IsZero())
}

func TestWeeklyTotals_Empty(t *testing.T) {
	for _, anchor := range []time.Time{day(t, "2026-02-18"), {}, time.Date(1999, 12, 31, 23, 0, 0, 0, time.UTC)} {
		got := WeeklyTotals(nil, anchor)
		assert.Zero(t, got.TotalHours)
		assert.Zero(t, got.AvgQuality)
		assert.Zero(t, got.EntryCount)
		assert.True(t, got.TotalEarnings.IsZero())
	}
}

func TestWeeklyTotals_OrderInvariant(t *testing.T) {
	entries := []performance.Entry{
		{Date: "2026-02-16", Time: 0.1, Quality: 33.3, AdminApproved: true},
		{Date: "2026-02-17", Time: 0.2, Quality: 66.7, AdminApproved: true},
		{Date: "2026-02-18", Time: 7.7, Quality: 12.1, AdminApproved: true},
		{Date: "2026-02-22", Time: 3.3, Quality: 99.9, AdminApproved: true},
	}
	reversed := make([]performance.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	anchor := day(t, "2026-02-20")

	assert.Equal(t, WeeklyTotals(entries, anchor), WeeklyTotals(reversed, anchor))
}

func TestWeeklyTotals_EffectiveValuesTakePrecedence(t *testing.T) {
	entries := []performance.Entry{
		{Date: "2026-02-16", Time: 10, Quality: 100, EffectiveTime: ptr(7), EffectiveQuality: ptr(60), AdminApproved: true},
		{Date: "2026-02-17", Time: 3, Quality: 80, EffectiveTime: ptr(0), AdminApproved: true},
	}
	got := WeeklyTotals(entries, day(t, "2026-02-16"))

	assert.Equal(t, 7.0, got.TotalHours)
	assert.Equal(t, 70.0, got.AvgQuality)
}

func TestWeeklyTotals_WeekBoundaries(t *testing.T) {
	entries := []performance.Entry{
		{Date: "2026-02-15", Time: 1, Quality: 10, AdminApproved: true}, // previous Sunday
		{Date: "2026-02-16T00:00:00.000Z", Time: 2, Quality: 20, AdminApproved: true},
		{Date: "2026-02-22T23:59:00Z", Time: 4, Quality: 40, AdminApproved: true}, // Sunday
		{Date: "2026-02-23", Time: 8, Quality: 80, AdminApproved: true},           // next Monday
	}
	got := WeeklyTotals(entries, day(t, "2026-02-19"))

	assert.Equal(t, 6.0, got.TotalHours)
	assert.Equal(t, 2, got.EntryCount)
}

func TestWeeklyTotals_DateIsLocalCalendarDay(t *testing.T) {
	// A UTC midnight timestamp must not slide to Sunday for a reader west of UTC.
	west := time.FixedZone("UTC-8", -8*3600)
	anchor := time.Date(2026, 2, 18, 12, 0, 0, 0, west)
	entries := []performance.Entry{
		{Date: "2026-02-16T00:00:00.000Z", Time: 5, Quality: 50, AdminApproved: true},
	}

	got := WeeklyTotals(entries, anchor)
	assert.Equal(t, 1, got.EntryCount)
	assert.Equal(t, 5.0, got.TotalHours)
}

func TestWeeklyTotals_MalformedValuesCoerceToZero(t *testing.T) {
	entries := []performance.Entry{
		{Date: "2026-02-16", Time: math.NaN(), Quality: 90, AdminApproved: true},
		{Date: "2026-02-17", Time: 4, Quality: math.Inf(1), AdminApproved: true},
		{Date: "not-a-date", Time: 8, Quality: 90, AdminApproved: true},
	}
	got := WeeklyTotals(entries, day(t, "2026-02-16"))

	assert.Equal(t, 4.0, got.TotalHours)
	assert.Equal(t, 45.0, got.AvgQuality)
	assert.Equal(t, 2, got.EntryCount)
}

func TestDaysWorkedAndExpectedHours(t *testing.T) {
	entries := append(sampleEntries(), performance.Entry{Date: "2026-02-16", Time: 1, Quality: 90, AdminApproved: true})

	days := DaysWorked(entries, day(t, "2026-02-18"))
	assert.Equal(t, 2, days)
	assert.Equal(t, 16.0, ExpectedHours(days))
	assert.Equal(t, 0.0, ExpectedHours(0))
}

func TestOverallPerformance_Scenario(t *testing.T) {
	assert.InDelta(t, 87.5, TimePercentage(14, 16), 1e-9)

	score := OverallPerformance(80, 14, 16)
	assert.InDelta(t, 82.25, score, 1e-9)
	assert.Equal(t, performance.TierExcellent, PerformanceTier(score))
}

func TestOverallPerformance_ZeroExpectedHours(t *testing.T) {
	for _, q := range []float64{0, 42.5, 80, 100} {
		for _, h := range []float64{0, 14, 1000} {
			assert.Equal(t, q*0.7, OverallPerformance(q, h, 0), "q=%v h=%v", q, h)
		}
	}
}

func TestOverallPerformance_NotClamped(t *testing.T) {
	// 24h logged against an 8h day: 300% time.
	score := OverallPerformance(100, 24, 8)
	assert.InDelta(t, 160.0, score, 1e-9)
	assert.Equal(t, 100.0, BarWidth(TimePercentage(24, 8)))
	assert.Equal(t, 0.0, BarWidth(-5))
}

func TestPerformanceTier_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  performance.Tier
	}{
		{math.Inf(-1), performance.TierBelow},
		{-10, performance.TierBelow},
		{0, performance.TierBelow},
		{59.999, performance.TierBelow},
		{60, performance.TierAverage},
		{69.999, performance.TierAverage},
		{70, performance.TierGood},
		{79.999, performance.TierGood},
		{80, performance.TierExcellent},
		{100, performance.TierExcellent},
		{250, performance.TierExcellent},
		{math.NaN(), performance.TierBelow},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PerformanceTier(c.score), "score %v", c.score)
	}
}

func TestLifetimeTotals_PaidOnlyAndWeighted(t *testing.T) {
	payments := []performance.WeeklyPayment{
		{TotalHours: 40, AvgQuality: 90, EntryCount: 5, TotalEarnings: decimal.NewFromInt(20000), Status: performance.PaymentStatusPaid},
		{TotalHours: 8, AvgQuality: 60, EntryCount: 1, TotalEarnings: decimal.NewFromInt(4000), Status: performance.PaymentStatusApproved, Paid: true},
		{TotalHours: 30, AvgQuality: 10, EntryCount: 4, TotalEarnings: decimal.NewFromInt(15000), Status: performance.PaymentStatusPending},
		{TotalHours: 12, AvgQuality: 10, EntryCount: 2, TotalEarnings: decimal.NewFromInt(6000), Status: performance.PaymentStatusDenied},
	}
	got := LifetimeTotals(payments)

	assert.Equal(t, 48.0, got.TotalHours)
	assert.Equal(t, 6, got.EntryCount)
	assert.True(t, decimal.NewFromInt(24000).Equal(got.TotalEarnings), got.TotalEarnings.String())
	// (90*5 + 60*1) / 6 = 85
	assert.InDelta(t, 85.0, got.AvgQuality, 1e-9)
}

func TestLifetimeTotals_EqualCountsGiveSimpleMean(t *testing.T) {
	payments := []performance.WeeklyPayment{
		{AvgQuality: 70, EntryCount: 3, Paid: true},
		{AvgQuality: 80, EntryCount: 3, Paid: true},
		{AvgQuality: 96, EntryCount: 3, Paid: true},
	}
	assert.InDelta(t, (70.0+80+96)/3, LifetimeTotals(payments).AvgQuality, 1e-9)
}

func TestLifetimeTotals_NoEntries(t *testing.T) {
	got := LifetimeTotals([]performance.WeeklyPayment{
		{TotalEarnings: decimal.NewFromInt(5000), AvgQuality: 90, Paid: true, PaymentType: performance.PaymentTypeBonus},
	})
	assert.Zero(t, got.AvgQuality)
	assert.Zero(t, got.EntryCount)
	assert.True(t, decimal.NewFromInt(5000).Equal(got.TotalEarnings))

	empty := LifetimeTotals(nil)
	assert.Zero(t, empty.TotalHours)
	assert.True(t, empty.TotalEarnings.IsZero())
}

func TestMergePendingBonus(t *testing.T) {
	u := performance.User{ID: "u1", ExtraBonus: decimal.NewFromInt(2500), ExtraBonusReason: "weekend cover"}
	payments := []performance.WeeklyPayment{
		{ID: "p1", PaymentType: performance.PaymentTypeWeekly, Status: performance.PaymentStatusPaid, Paid: true},
	}

	merged := MergePendingBonus(u, payments)
	require.Len(t, merged, 2)
	assert.Len(t, payments, 1, "input must not be modified")

	row := merged[0]
	assert.Equal(t, performance.PendingBonusID, row.ID)
	assert.True(t, row.IsPendingBonus())
	assert.Equal(t, performance.PaymentTypeBonus, row.PaymentType)
	assert.Equal(t, performance.PaymentStatusPending, row.Status)
	assert.False(t, row.Paid)
	assert.True(t, u.ExtraBonus.Equal(row.TotalEarnings))
	assert.Equal(t, "weekend cover", row.ExtraBonusReason)
	assert.Equal(t, "p1", merged[1].ID)
}

func TestMergePendingBonus_Idempotent(t *testing.T) {
	u := performance.User{ID: "u1", ExtraBonus: decimal.NewFromInt(1000)}
	once := MergePendingBonus(u, nil)
	twice := MergePendingBonus(u, once)

	assert.Equal(t, once, twice)
	assert.Len(t, twice, 1)
}

func TestMergePendingBonus_NoQueuedBonus(t *testing.T) {
	payments := []performance.WeeklyPayment{{ID: "p1"}}

	assert.Equal(t, payments, MergePendingBonus(performance.User{}, payments))
	assert.Equal(t, payments, MergePendingBonus(performance.User{ExtraBonus: decimal.NewFromInt(-50)}, payments))

	attached := []performance.WeeklyPayment{{ID: "b1", PaymentType: performance.PaymentTypeBonus, Paid: false}}
	assert.Equal(t, attached, MergePendingBonus(performance.User{ExtraBonus: decimal.NewFromInt(500)}, attached))
}

func TestMergePendingBonus_PaidBonusDoesNotCount(t *testing.T) {
	u := performance.User{ExtraBonus: decimal.NewFromInt(500)}
	payments := []performance.WeeklyPayment{{ID: "b1", PaymentType: performance.PaymentTypeBonus, Paid: true, Status: performance.PaymentStatusPaid}}

	merged := MergePendingBonus(u, payments)
	require.Len(t, merged, 2)
	assert.True(t, merged[0].IsPendingBonus())
}

func TestUnpaidTotal_Scenario(t *testing.T) {
	payments := []performance.WeeklyPayment{
		{Status: performance.PaymentStatusPending, TotalEarnings: decimal.NewFromInt(1000)},
		{Status: performance.PaymentStatusPaid, Paid: true, TotalEarnings: decimal.NewFromInt(2000)},
		{Status: performance.PaymentStatusDenied, TotalEarnings: decimal.NewFromInt(500)},
	}
	assert.True(t, decimal.NewFromInt(1000).Equal(UnpaidTotal(payments)))
}

func TestUnpaidTotal_LegacyPaidFlag(t *testing.T) {
	payments := []performance.WeeklyPayment{
		{Status: performance.PaymentStatusApproved, Paid: true, TotalEarnings: decimal.NewFromInt(700)},
		{Status: performance.PaymentStatusApproved, TotalEarnings: decimal.NewFromInt(300)},
	}
	assert.True(t, decimal.NewFromInt(300).Equal(UnpaidTotal(payments)))
	assert.True(t, UnpaidTotal(nil).IsZero())
}

func TestEarnings(t *testing.T) {
	rate := decimal.NewFromInt(1500)

	assert.True(t, decimal.NewFromInt(12000).Equal(Earnings(8, rate, decimal.Zero)))
	assert.True(t, decimal.NewFromInt(14500).Equal(Earnings(8, rate, decimal.NewFromInt(2500))))
	assert.True(t, decimal.NewFromInt(11250).Equal(Earnings(7.5, rate, decimal.Zero)))
	assert.True(t, Earnings(math.NaN(), rate, decimal.Zero).IsZero())
}

func TestEarnings_LinearInHours(t *testing.T) {
	rate := decimal.NewFromInt(1250)
	for _, h := range []float64{0, 1, 3.5, 7.25, 40} {
		assert.True(t, Earnings(2*h, rate, decimal.Zero).Equal(Earnings(h, rate, decimal.Zero).Mul(decimal.NewFromInt(2))), "h=%v", h)
	}
}

func TestBuildScorecard(t *testing.T) {
	card := BuildScorecard(sampleEntries(), day(t, "2026-02-18"), decimal.NewFromInt(1000))

	assert.Equal(t, 14.0, card.Weekly.TotalHours)
	assert.True(t, decimal.NewFromInt(14000).Equal(card.Weekly.TotalEarnings))
	assert.Equal(t, 2, card.DaysWorked)
	assert.Equal(t, 16.0, card.ExpectedHours)
	assert.InDelta(t, 87.5, card.TimePercentage, 1e-9)
	assert.InDelta(t, 87.5, card.BarWidth, 1e-9)
	assert.InDelta(t, 82.25, card.Score, 1e-9)
	assert.Equal(t, performance.TierExcellent, card.Tier)
}

func TestBuildScorecard_NothingApproved(t *testing.T) {
	card := BuildScorecard(nil, day(t, "2026-02-18"), decimal.NewFromInt(1000))

	assert.Zero(t, card.Score)
	assert.Zero(t, card.DaysWorked)
	assert.Equal(t, performance.TierBelow, card.Tier)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(performance.PaymentStatusPending, performance.PaymentStatusApproved))
	assert.True(t, CanTransition(performance.PaymentStatusApproved, performance.PaymentStatusPaid))
	assert.True(t, CanTransition(performance.PaymentStatusPending, performance.PaymentStatusDenied))
	assert.True(t, CanTransition(performance.PaymentStatusPending, performance.PaymentStatusPaid))

	assert.False(t, CanTransition(performance.PaymentStatusPaid, performance.PaymentStatusDenied))
	assert.False(t, CanTransition(performance.PaymentStatusDenied, performance.PaymentStatusPaid))
	assert.False(t, CanTransition(performance.PaymentStatusApproved, performance.PaymentStatusDenied))
	assert.False(t, CanTransition(performance.PaymentStatusPaid, performance.PaymentStatusPending))
}
