package performance

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PerformanceServiceImpl struct {
	repo performance.PerformanceRepository
	loc  *time.Location
	now  func() time.Time
}

func NewPerformanceService(repo performance.PerformanceRepository, loc *time.Location) performance.PerformanceService {
	if loc == nil {
		loc = time.Local
	}
	return &PerformanceServiceImpl{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// weekAnchor resolves the ?week= value. Empty means the current week.
func (s *PerformanceServiceImpl) weekAnchor(week string) (time.Time, error) {
	if strings.TrimSpace(week) == "" {
		return s.now().In(s.loc), nil
	}
	anchor, ok := utils.ParseLocalDate(strings.TrimSpace(week), s.loc)
	if !ok {
		return time.Time{}, performance.ErrInvalidWeek
	}
	return anchor, nil
}

func weekRange(anchor time.Time) (string, string) {
	start, end := utils.WeekBounds(anchor)
	return utils.FormatDate(start), utils.FormatDate(end.AddDate(0, 0, -1))
}

// ========== READ VIEWS ==========

func (s *PerformanceServiceImpl) GetMyPerformance(ctx context.Context, week string) (*performance.MyPerformanceResponse, error) {
	anchor, err := s.weekAnchor(week)
	if err != nil {
		return nil, err
	}

	dashboard, err := s.repo.GetOwnDashboard(ctx)
	if err != nil {
		return nil, err
	}

	start, end := weekRange(anchor)
	return &performance.MyPerformanceResponse{
		WeekStart:  start,
		WeekEnd:    end,
		HourlyRate: dashboard.User.HourlyRate,
		Scorecard:  BuildScorecard(dashboard.Entries, anchor, dashboard.User.HourlyRate),
		Payments:   paymentsView(dashboard.User, dashboard.Payments),
	}, nil
}

func (s *PerformanceServiceImpl) GetUserPerformance(ctx context.Context, userID string, week string) (*performance.UserPerformanceResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, performance.ErrUserIDRequired
	}
	anchor, err := s.weekAnchor(week)
	if err != nil {
		return nil, err
	}

	stats, payments, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, end := weekRange(anchor)
	return &performance.UserPerformanceResponse{
		User:      performance.NewUserResponse(stats.User),
		WeekStart: start,
		WeekEnd:   end,
		Scorecard: BuildScorecard(stats.Entries, anchor, stats.User.HourlyRate),
		Payments:  paymentsView(stats.User, payments),
	}, nil
}

func (s *PerformanceServiceImpl) GetUserPayments(ctx context.Context, userID string) (*performance.PaymentsViewResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, performance.ErrUserIDRequired
	}

	stats, payments, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := paymentsView(stats.User, payments)
	return &view, nil
}

func (s *PerformanceServiceImpl) GetUserDetail(ctx context.Context, userID string) (*performance.UserDetailResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, performance.ErrUserIDRequired
	}

	stats, payments, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	chart, err := ChartSeries(normalize(payments), s.loc)
	if err != nil {
		return nil, err
	}

	return &performance.UserDetailResponse{
		User:     performance.NewUserResponse(stats.User),
		Payments: paymentsView(stats.User, payments),
		Chart:    chart,
	}, nil
}

// loadUser fetches a worker's stats and payment list concurrently
func (s *PerformanceServiceImpl) loadUser(ctx context.Context, userID string) (performance.UserStats, []performance.WeeklyPayment, error) {
	var (
		stats    performance.UserStats
		payments []performance.WeeklyPayment
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.repo.GetUserStats(gCtx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		payments, err = s.repo.ListWeeklyPayments(gCtx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return performance.UserStats{}, nil, err
	}
	return stats, payments, nil
}

// ========== MUTATIONS ==========

func (s *PerformanceServiceImpl) MarkWeekPaid(ctx context.Context, req performance.MarkWeekPaidRequest) (*performance.PaymentsViewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.repo.ListWeeklyPayments(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// No row yet is fine: the backend creates the payment for the week.
	if current, ok := findWeek(payments, req.WeekStart, s.loc); ok {
		if err := checkTransition(current, performance.PaymentStatusPaid); err != nil {
			return nil, err
		}
	}

	paid, err := s.repo.MarkWeekPaid(ctx, req.UserID, req.WeekStart, req.WeekEnd)
	if err != nil {
		return nil, err
	}
	slog.Info("Marked week paid", "user_id", req.UserID, "week_start", req.WeekStart, "payment_id", paid.ID)

	stats, payments, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	view := paymentsView(stats.User, payments)
	return &view, nil
}

func (s *PerformanceServiceImpl) AddBonus(ctx context.Context, req performance.AddBonusRequest) (*performance.PaymentsViewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.AddBonus(ctx, req.UserID, req.Decimal(), strings.TrimSpace(req.Reason))
	if err != nil {
		return nil, err
	}
	slog.Info("Added bonus", "user_id", u.ID, "amount", req.Decimal().String(), "outstanding", u.ExtraBonus.String())

	payments, err := s.repo.ListWeeklyPayments(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	view := paymentsView(u, payments)
	return &view, nil
}

func (s *PerformanceServiceImpl) DenyPayment(ctx context.Context, req performance.DenyPaymentRequest) (*performance.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.PaymentID == performance.PendingBonusID {
		return nil, performance.ErrPendingBonusReadOnly
	}

	payments, err := s.repo.ListWeeklyPayments(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	current, ok := findID(payments, req.PaymentID)
	if !ok {
		return nil, performance.ErrPaymentNotFound
	}
	if err := checkTransition(current, performance.PaymentStatusDenied); err != nil {
		return nil, err
	}

	denied, err := s.repo.DenyPayment(ctx, req.PaymentID, strings.TrimSpace(req.Reason))
	if err != nil {
		return nil, err
	}
	slog.Info("Denied payment", "user_id", req.UserID, "payment_id", req.PaymentID)

	if denied.ID == "" {
		denied.ID = req.PaymentID
	}
	resp := performance.NewPaymentResponse(normalizeOne(denied))
	return &resp, nil
}

// ========== HELPERS ==========

// paymentsView merges any queued bonus into the list and computes the
// totals. Lifetime and unpaid totals use the list as the backend returned it.
func paymentsView(u performance.User, payments []performance.WeeklyPayment) performance.PaymentsViewResponse {
	payments = normalize(payments)
	merged := MergePendingBonus(u, payments)

	queued := decimal.Zero
	rows := make([]performance.PaymentResponse, 0, len(merged))
	for _, p := range merged {
		if p.IsPendingBonus() {
			queued = p.ExtraBonus
		}
		rows = append(rows, performance.NewPaymentResponse(p))
	}

	return performance.PaymentsViewResponse{
		UserID:      u.ID,
		Payments:    rows,
		Lifetime:    LifetimeTotals(payments),
		UnpaidTotal: UnpaidTotal(payments),
		QueuedBonus: queued,
	}
}

// normalize returns a copy of payments with the status made explicit
func normalize(payments []performance.WeeklyPayment) []performance.WeeklyPayment {
	out := make([]performance.WeeklyPayment, len(payments))
	for i, p := range payments {
		out[i] = normalizeOne(p)
	}
	return out
}

func normalizeOne(p performance.WeeklyPayment) performance.WeeklyPayment {
	switch {
	case p.Paid:
		p.Status = performance.PaymentStatusPaid
	case p.Status == "":
		p.Status = performance.PaymentStatusPending
	}
	return p
}

func checkTransition(p performance.WeeklyPayment, to performance.PaymentStatus) error {
	p = normalizeOne(p)
	switch {
	case p.IsPaid():
		return performance.ErrPaymentAlreadyPaid
	case p.IsDenied():
		return performance.ErrPaymentDenied
	case !CanTransition(p.Status, to):
		return performance.ErrInvalidTransition
	}
	return nil
}

// findWeek returns the weekly row whose week starts on monday. Rows are
// matched by the Monday of their stored week_start, so a row the backend
// keyed on another day of the same week still counts.
func findWeek(payments []performance.WeeklyPayment, monday string, loc *time.Location) (performance.WeeklyPayment, bool) {
	for _, p := range payments {
		if p.PaymentType == performance.PaymentTypeBonus {
			continue
		}
		if weekKey(p.WeekStart, loc) == monday {
			return p, true
		}
	}
	return performance.WeeklyPayment{}, false
}

func findID(payments []performance.WeeklyPayment, id string) (performance.WeeklyPayment, bool) {
	for _, p := range payments {
		if p.ID == id {
			return p, true
		}
	}
	return performance.WeeklyPayment{}, false
}

// weekKey returns the Monday of the week containing the date in s, empty
// when s is not a date
func weekKey(s string, loc *time.Location) string {
	day, ok := utils.ParseLocalDate(s, loc)
	if !ok {
		return ""
	}
	start, _ := utils.WeekBounds(day)
	return utils.FormatDate(start)
}
