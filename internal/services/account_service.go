package services

import (
	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db      *gorm.DB
	ledger  LedgerStorer
	mutator BalanceMutator
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB, ledger LedgerStorer, mutator BalanceMutator) AccountServicer {
	return &accountService{db: db, ledger: ledger, mutator: mutator}
}

// EnsureAccounts provisions the default accounts for a user.
func (s *accountService) EnsureAccounts(userID string) ([]models.Account, error) {
	return s.ledger.EnsureAccounts(userID)
}

// GetUserAccounts lists all of a user's accounts.
func (s *accountService) GetUserAccounts(userID string) ([]models.Account, error) {
	return s.ledger.GetUserAccounts(userID)
}

// GetAccount reads one of a user's accounts by type.
func (s *accountService) GetAccount(userID string, accountType models.AccountType) (*models.Account, error) {
	return s.ledger.GetAccount(userID, accountType)
}

// UpdateBalance applies a single add or subtract in its own unit of work.
// It backs "add savings", "top up stash" and other one-sided adjustments.
func (s *accountService) UpdateBalance(
	userID string,
	accountType models.AccountType,
	amount models.Money,
	op models.LedgerOperation,
	category string,
	description string,
) (*MutationResult, error) {
	if !accountType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown account type")
	}

	var result *MutationResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		var err error
		result, err = s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: accountType,
			Amount:      amount,
			Operation:   op,
			Category:    category,
			Description: description,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Transfer moves amount from one of the user's accounts to another as one
// unit of work. Both rows are locked in lexical account_type order before
// either is changed.
func (s *accountService) Transfer(
	userID string,
	from models.AccountType,
	to models.AccountType,
	amount models.Money,
	description string,
) (*TransferResult, error) {
	if from == to {
		return nil, apperrors.ErrSameAccountTransfer
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown account type")
	}
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if description == "" {
		description = "Transfer from " + string(from) + " to " + string(to)
	}

	var result TransferResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		if err := lockAccounts(tx, s.ledger, userID, from, to); err != nil {
			return err
		}

		debit, err := s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: from,
			Amount:      amount,
			Operation:   models.OperationSubtract,
			Category:    "Transfer",
			Description: description,
		})
		if err != nil {
			return err
		}

		credit, err := s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: to,
			Amount:      amount,
			Operation:   models.OperationAdd,
			Category:    "Transfer",
			Description: description,
		})
		if err != nil {
			return err
		}

		result = TransferResult{
			FromBalance:         debit.NewBalance,
			ToBalance:           credit.NewBalance,
			DebitTransactionID:  debit.TransactionID,
			CreditTransactionID: credit.TransactionID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
