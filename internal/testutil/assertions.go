package testutil

import (
	"errors"
	"testing"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"

	"gorm.io/gorm"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertBalance checks the stored balance of a user's account.
func AssertBalance(t *testing.T, db *gorm.DB, userID string, accountType models.AccountType, want models.Money) {
	t.Helper()

	if got := GetBalance(t, db, userID, accountType); got != want {
		t.Errorf("expected %s balance %s, got %s", accountType, want, got)
	}
}

// AssertConserved checks that credits minus debits recorded against the
// account equal the change from initial to the stored balance.
func AssertConserved(t *testing.T, db *gorm.DB, userID string, accountType models.AccountType, initial models.Money) {
	t.Helper()

	var account models.Account
	if err := db.Where("user_id = ? AND account_type = ?", userID, accountType).First(&account).Error; err != nil {
		t.Fatalf("failed to load %s account: %v", accountType, err)
	}

	var sums struct {
		Credits int64
		Debits  int64
	}
	err := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS credits, "+
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS debits",
			models.EntryTypeCredit, models.EntryTypeDebit).
		Where("account_id = ?", account.ID).
		Scan(&sums).Error
	if err != nil {
		t.Fatalf("failed to sum ledger: %v", err)
	}

	if net := models.Money(sums.Credits - sums.Debits); net != account.Balance-initial {
		t.Errorf("ledger net %s does not match balance change %s on %s", net, account.Balance-initial, accountType)
	}
}
