package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/workforce-performance-go/internal/config"
	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-performance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewLogger builds the ECS JSON logger used for request logs and the app
func NewLogger(cfg config.AppConfig, out io.Writer) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-performance"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
}

func NewRouter(cfg config.AppConfig, logger *slog.Logger, JWTService jwt.Service, performanceHandler PerformanceHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.UpstreamSession)

			r.With(middleware.RequirePermission(user.PermissionPerformanceViewOwn)).
				Get("/my-performance", performanceHandler.GetMyPerformance)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPerformanceViewAll))
				r.Get("/users/{id}/performance", performanceHandler.GetUserPerformance)
				r.Get("/users/{id}/payments", performanceHandler.GetUserPayments)
			})

			r.With(middleware.RequirePermission(user.PermissionPaymentMarkPaid)).
				Put("/payments/mark-week-paid", performanceHandler.MarkWeekPaid)

			r.Route("/superadmin/users/{id}", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionUserDetail)).
					Get("/", performanceHandler.GetUserDetail)
				r.With(middleware.RequirePermission(user.PermissionBonusManage)).
					Put("/bonus", performanceHandler.AddBonus)
				r.With(middleware.RequirePermission(user.PermissionPaymentDeny)).
					Put("/payments/{paymentID}/deny", performanceHandler.DenyPayment)
			})
		})
	})
	return r
}
