package restapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/config"
	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/upstream"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, r http.Handler) performance.PerformanceRepository {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewPerformanceRepository(upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}))
}

func ctxWithSession() context.Context {
	return upstream.WithSession(context.Background(), upstream.Session{Token: "t"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"message": "not found"}`))
}

func TestPerformanceRepository_NotFoundMapping(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/admin/users/{id}/stats", notFound)
	r.Put("/superadmin/payments/{id}/deny", notFound)
	r.Put("/superadmin/bonus/{id}", notFound)
	repo := newTestRepository(t, r)
	ctx := ctxWithSession()

	_, err := repo.GetUserStats(ctx, "ghost")
	assert.ErrorIs(t, err, performance.ErrUserNotFound)

	_, err = repo.DenyPayment(ctx, "p9", "dup")
	assert.ErrorIs(t, err, performance.ErrPaymentNotFound)
}

func TestPerformanceRepository_MissingPaymentListIsEmpty(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/payments/users/{id}/weekly-payments", notFound)
	repo := newTestRepository(t, r)

	payments, err := repo.ListWeeklyPayments(ctxWithSession(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestPerformanceRepository_NullPaymentListIsEmpty(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/payments/users/{id}/weekly-payments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	repo := newTestRepository(t, r)

	payments, err := repo.ListWeeklyPayments(ctxWithSession(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, payments)
}

func TestPerformanceRepository_UpstreamFailureIsWrapped(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/payments/users/{id}/weekly-payments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	repo := newTestRepository(t, r)

	_, err := repo.ListWeeklyPayments(ctxWithSession(), "u1")
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestPerformanceRepository_FillsUserID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/admin/users/{id}/stats", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user": {"name": "Ada", "hourlyRate": 1200}, "weekly": {"entries": []}}`))
	})
	repo := newTestRepository(t, r)

	stats, err := repo.GetUserStats(ctxWithSession(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", stats.User.ID)
	assert.Equal(t, "Ada", stats.User.Name)
}
