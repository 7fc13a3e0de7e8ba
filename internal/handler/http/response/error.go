package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/performance"
	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		Forbidden(w, "Unknown role")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Performance domain errors
	case errors.Is(err, performance.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, performance.ErrPaymentNotFound):
		NotFound(w, "Weekly payment not found")
	case errors.Is(err, performance.ErrPaymentAlreadyPaid):
		Conflict(w, "Weekly payment already paid")
	case errors.Is(err, performance.ErrPaymentDenied):
		Conflict(w, "Weekly payment was denied")
	case errors.Is(err, performance.ErrPendingBonusReadOnly):
		Conflict(w, "Queued bonus cannot be modified")
	case errors.Is(err, performance.ErrInvalidTransition):
		Conflict(w, "Invalid payment status transition")
	case errors.Is(err, performance.ErrInvalidWeek):
		BadRequest(w, err.Error(), map[string]string{"week": "must be a date in YYYY-MM-DD format"})
	case errors.Is(err, performance.ErrUserIDRequired):
		BadRequest(w, err.Error(), nil)

	// Upstream errors
	case errors.Is(err, upstream.ErrNoSession), errors.Is(err, upstream.ErrUnauthorized):
		Unauthorized(w, "Not authorized by the backend")
	case errors.Is(err, upstream.ErrRejected):
		BadRequest(w, upstreamMessage(err, "Request rejected by the backend"), nil)
	case errors.Is(err, upstream.ErrUnavailable), errors.Is(err, upstream.ErrInvalidResponse):
		slog.Error("Upstream failure", "error", err)
		BadGateway(w, "Backend unavailable")

	// Default
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			slog.Error("Unexpected upstream status", "status", apiErr.StatusCode, "error", err)
			BadGateway(w, "Unexpected backend response")
			return
		}
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

func upstreamMessage(err error, fallback string) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
