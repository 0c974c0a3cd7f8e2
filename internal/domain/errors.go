package domain

import "errors"

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInternalError         = errors.New("internal error")
	ErrOwnerNotFound         = errors.New("owner not found")
	ErrPropertyNotFound      = errors.New("property not found")
	ErrUnitNotFound          = errors.New("unit not found")
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrExpenseTypeNotFound   = errors.New("expense type not found")
	ErrTenantExpenseNotFound = errors.New("tenant expense not found")
	ErrPaidExpenseNotFound   = errors.New("paid expense not found")
	ErrNameRequired          = errors.New("name is required")
	ErrNameTooLong           = errors.New("name exceeds maximum length")
	ErrInvalidAmount         = errors.New("amount must not be negative")
	ErrInvalidCycle          = errors.New("unrecognized billing cycle")
	ErrInvalidDateRange      = errors.New("end date must not precede start date")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidOTP            = errors.New("invalid or expired OTP")
)

// Validation constants
const (
	MaxNameLength = 255
)
