package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("lock timeout")
	err := Wrap(ErrStorage, cause)

	if err.Code != "STORAGE_ERROR" {
		t.Errorf("expected STORAGE_ERROR, got %s", err.Code)
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.StatusCode)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable")
	}
	if err.Error() == cause.Error() {
		t.Error("internal error must not leak into the message")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "amount is required")
	if err.Message != "amount is required" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if ErrInvalidInput.Message != "Invalid input" {
		t.Error("sentinel must not be mutated")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("pay bill: %w", WithMessage(ErrInsufficientBalance, "short by 0.01"))

	if !stderrors.Is(err, ErrInsufficientBalance) {
		t.Error("expected match on code")
	}
	if stderrors.Is(err, ErrInsufficientPlanBalance) {
		t.Error("different codes must not match")
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) || appErr.StatusCode != http.StatusBadRequest {
		t.Error("expected *AppError with 400")
	}
}
