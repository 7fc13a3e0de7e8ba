package performance

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPaymentNotFound      = errors.New("weekly payment not found")
	ErrPaymentAlreadyPaid   = errors.New("weekly payment already paid, cannot modify")
	ErrPaymentDenied        = errors.New("weekly payment was denied")
	ErrPendingBonusReadOnly = errors.New("queued bonus is not a payment and cannot be modified")
	ErrInvalidTransition    = errors.New("invalid payment status transition")
	ErrInvalidWeek          = errors.New("invalid week, expected YYYY-MM-DD")
	ErrUserIDRequired       = errors.New("user ID is required")
)
