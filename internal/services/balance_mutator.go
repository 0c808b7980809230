package services

import (
	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/logger"
	"finvault/internal/models"
)

// balanceMutator is the only code path that changes an account balance.
type balanceMutator struct {
	ledger LedgerStorer
}

// NewBalanceMutator creates a new BalanceMutator over ledger.
func NewBalanceMutator(ledger LedgerStorer) BalanceMutator {
	return &balanceMutator{ledger: ledger}
}

// Mutate locks the account, validates the change, writes the new balance and
// appends the matching ledger row. It joins tx and leaves commit to the caller.
func (m *balanceMutator) Mutate(tx *gorm.DB, req MutationRequest) (*MutationResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	entryType, ok := req.Operation.EntryType()
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "operation must be add or subtract")
	}

	account, err := m.ledger.GetAccountForUpdate(tx, req.UserID, req.AccountType)
	if err != nil {
		return nil, err
	}

	var newBalance models.Money
	switch req.Operation {
	case models.OperationAdd:
		newBalance, err = account.Balance.Add(req.Amount)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
		}
	case models.OperationSubtract:
		if req.Amount > account.Balance {
			return nil, apperrors.ErrInsufficientBalance
		}
		newBalance = account.Balance - req.Amount
	}

	if err := m.ledger.SetBalance(tx, account.ID, newBalance); err != nil {
		return nil, err
	}

	entry, err := m.ledger.AppendTransaction(tx, LedgerEntry{
		UserID:      req.UserID,
		AccountID:   account.ID,
		Type:        entryType,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Debugw("balance mutated",
		"user_id", req.UserID,
		"account_type", req.AccountType,
		"operation", req.Operation,
		"amount", req.Amount.String(),
		"transaction_id", entry.ID,
	)

	return &MutationResult{
		AccountID:     account.ID,
		AccountType:   string(account.AccountType),
		NewBalance:    newBalance,
		TransactionID: entry.ID,
	}, nil
}
