// Package errors provides the typed error taxonomy of the ledger.
// Services return *AppError only, so callers never see raw driver errors.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Is matches any AppError carrying the same code, so errors.Is works against sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrStorage        = &AppError{Code: "STORAGE_ERROR", Message: "The ledger store is unavailable", StatusCode: http.StatusInternalServerError}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrRateLimited    = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Caller identity is missing", StatusCode: http.StatusUnauthorized}
)

// Ledger errors.
var (
	ErrAccountNotFound     = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount       = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInsufficientBalance = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient account balance", StatusCode: http.StatusBadRequest}
	ErrSameAccountTransfer = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer to the same account", StatusCode: http.StatusBadRequest}
)

// Bill errors.
var (
	ErrBillNotFound = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrAlreadyPaid  = &AppError{Code: "ALREADY_PAID", Message: "Bill has already been paid", StatusCode: http.StatusBadRequest}
)

// Savings errors.
var (
	ErrPlanNotFound            = &AppError{Code: "PLAN_NOT_FOUND", Message: "Savings plan not found", StatusCode: http.StatusNotFound}
	ErrInsufficientPlanBalance = &AppError{Code: "INSUFFICIENT_PLAN_BALANCE", Message: "Insufficient savings plan balance", StatusCode: http.StatusBadRequest}
)

// Circle errors.
var (
	ErrCircleNotFound = &AppError{Code: "CIRCLE_NOT_FOUND", Message: "Circle not found", StatusCode: http.StatusNotFound}
	ErrCircleInactive = &AppError{Code: "CIRCLE_INACTIVE", Message: "Circle is not active", StatusCode: http.StatusBadRequest}
	ErrCircleFull     = &AppError{Code: "CIRCLE_FULL", Message: "Circle has reached its member limit", StatusCode: http.StatusBadRequest}
	ErrAlreadyMember  = &AppError{Code: "ALREADY_MEMBER", Message: "Already a member of this circle", StatusCode: http.StatusBadRequest}
	ErrNotAMember     = &AppError{Code: "NOT_A_MEMBER", Message: "Not a member of this circle", StatusCode: http.StatusBadRequest}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrInvestmentSold     = &AppError{Code: "INVESTMENT_SOLD", Message: "Investment has already been sold", StatusCode: http.StatusBadRequest}
)
