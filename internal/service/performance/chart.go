package performance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/teambition/rrule-go"
)

type weekBucket struct {
	hours           decimal.Decimal
	weightedQuality decimal.Decimal
	entries         int64
	earnings        decimal.Decimal
}

func (b weekBucket) point(weekStart time.Time) performance.ChartPoint {
	p := performance.ChartPoint{
		WeekStart: utils.FormatDate(weekStart),
		Hours:     b.hours.InexactFloat64(),
		Earnings:  b.earnings,
	}
	if b.entries > 0 {
		p.AvgQuality = b.weightedQuality.Div(decimal.NewFromInt(b.entries)).InexactFloat64()
	}
	return p
}

// ChartSeries groups paid payments by week and returns one point per Monday
// from the first paid week to the last. Weeks without a paid payment are
// present with zero values so the series has no gaps.
func ChartSeries(payments []performance.WeeklyPayment, loc *time.Location) ([]performance.ChartPoint, error) {
	buckets := make(map[string]*weekBucket)
	var first, last time.Time

	for _, p := range payments {
		if !p.IsPaid() {
			continue
		}
		day, ok := utils.ParseLocalDate(p.WeekStart, loc)
		if !ok {
			continue
		}
		start, _ := utils.WeekBounds(day)
		key := utils.FormatDate(start)

		b, exists := buckets[key]
		if !exists {
			b = &weekBucket{hours: decimal.Zero, weightedQuality: decimal.Zero, earnings: decimal.Zero}
			buckets[key] = b
		}
		b.hours = b.hours.Add(decimal.NewFromFloat(finite(p.TotalHours)))
		b.weightedQuality = b.weightedQuality.Add(
			decimal.NewFromFloat(finite(p.AvgQuality)).Mul(decimal.NewFromInt(int64(p.EntryCount))),
		)
		b.entries += int64(p.EntryCount)
		b.earnings = b.earnings.Add(p.TotalEarnings)

		if first.IsZero() || start.Before(first) {
			first = start
		}
		if last.IsZero() || start.After(last) {
			last = start
		}
	}

	if len(buckets) == 0 {
		return []performance.ChartPoint{}, nil
	}

	rr, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   first,
		Until:     last,
		Byweekday: []rrule.Weekday{rrule.MO},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build chart weeks: %w", err)
	}

	weeks := rr.All()
	series := make([]performance.ChartPoint, 0, len(weeks))
	for _, w := range weeks {
		weekStart := utils.StartOfDay(w.In(loc))
		if b, ok := buckets[utils.FormatDate(weekStart)]; ok {
			series = append(series, b.point(weekStart))
			continue
		}
		series = append(series, performance.ChartPoint{
			WeekStart: utils.FormatDate(weekStart),
			Earnings:  decimal.Zero,
		})
	}
	return series, nil
}
