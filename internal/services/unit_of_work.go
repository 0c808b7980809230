package services

import (
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
)

// forUpdate makes a read exclusive until the enclosing unit of work ends.
var forUpdate = clause.Locking{Strength: "UPDATE"}

// withinUnitOfWork runs fn in a database transaction. Any error rolls the
// whole unit back; errors that are not already typed surface as STORAGE_ERROR.
func withinUnitOfWork(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if err := db.Transaction(fn); err != nil {
		return storageError(err)
	}
	return nil
}

// storageError passes *AppError through and wraps anything else.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrStorage, err)
}

// notFoundOr maps gorm.ErrRecordNotFound to sentinel and everything else to STORAGE_ERROR.
func notFoundOr(err error, sentinel *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return storageError(err)
}

// lockAccounts takes row locks on the user's accounts in lexical account_type
// order, so two operations touching the same pair never wait on each other in a cycle.
func lockAccounts(tx *gorm.DB, ledger LedgerStorer, userID string, types ...models.AccountType) error {
	ordered := make([]models.AccountType, len(types))
	copy(ordered, types)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for i, t := range ordered {
		if i > 0 && ordered[i-1] == t {
			continue
		}
		if _, err := ledger.GetAccountForUpdate(tx, userID, t); err != nil {
			return err
		}
	}
	return nil
}
