package services

import (
	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db      *gorm.DB
	ledger  LedgerStorer
	mutator BalanceMutator
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, ledger LedgerStorer, mutator BalanceMutator) TransactionServicer {
	return &transactionService{
		db:      db,
		ledger:  ledger,
		mutator: mutator,
	}
}

// CreateTransaction records a credit or debit against one of the user's
// accounts, moving its balance accordingly.
func (s *transactionService) CreateTransaction(
	userID string,
	accountType models.AccountType,
	entryType models.EntryType,
	category string,
	amount models.Money,
	description string,
	status string,
) (*MutationResult, error) {
	if accountType == "" {
		accountType = models.AccountTypeMain
	}

	var op models.LedgerOperation
	switch entryType {
	case models.EntryTypeCredit:
		op = models.OperationAdd
	case models.EntryTypeDebit:
		op = models.OperationSubtract
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be credit or debit")
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
			Status:      status,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListTransactions returns the user's ledger, newest first.
func (s *transactionService) ListTransactions(userID string, filter TransactionFilter) (*pagination.ListResponse[models.Transaction], error) {
	return s.ledger.ListTransactions(userID, filter)
}

// GetTransaction retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransaction(userID, transactionID string) (*models.Transaction, error) {
	return s.ledger.GetTransaction(userID, transactionID)
}
