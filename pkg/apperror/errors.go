package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses on the
// operational API and carries a stable code for log filtering.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to clients)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Matching outcomes (MATCH) ----
// Expected, non-fatal conditions: a matching attempt short-circuits to a
// no-match result and logs at warning level.

func ErrNotMatchable(reason string) *AppError {
	return New("MATCH_001", fmt.Sprintf("Payment not matchable: %s", reason), http.StatusConflict)
}

func ErrNoEligibleSolvers() *AppError {
	return New("MATCH_002", "No eligible solvers for payment", http.StatusConflict)
}

func ErrMatchInProgress() *AppError {
	return New("MATCH_003", "Payment is already being matched", http.StatusConflict)
}

// ---- Ledger (LED) ----

// ErrLedgerRead wraps a failed contract read. Reads are never retried.
func ErrLedgerRead(op string, err error) *AppError {
	return Wrap("LED_001", fmt.Sprintf("Ledger read failed: %s", op), http.StatusBadGateway, err)
}

// ErrLedgerWrite wraps a failed assignment submission after the retry
// budget is exhausted.
func ErrLedgerWrite(op string, err error) *AppError {
	return Wrap("LED_002", fmt.Sprintf("Ledger write failed: %s", op), http.StatusBadGateway, err)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected error as SYS_001.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error for the operational API.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}

// IsNoMatch reports whether err is one of the expected no-match outcomes
// (MATCH_*), as opposed to a ledger or internal failure.
func IsNoMatch(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case "MATCH_001", "MATCH_002", "MATCH_003":
		return true
	}
	return false
}

// IsNotFound reports whether err is a LED_003 not-found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == "LED_003"
}
