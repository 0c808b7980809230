package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/pagination"
)

// ledgerStore persists accounts and the append-only transaction log.
type ledgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a new LedgerStorer.
func NewLedgerStore(db *gorm.DB) LedgerStorer {
	return &ledgerStore{db: db}
}

// EnsureAccounts provisions the default accounts for a user. Existing rows
// are left untouched, so it is safe to call on every startup or first request.
func (s *ledgerStore) EnsureAccounts(userID string) ([]models.Account, error) {
	if userID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user id is required")
	}

	for _, accountType := range models.DefaultAccountTypes {
		account := &models.Account{UserID: userID, AccountType: accountType, Currency: "NGN"}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(account).Error; err != nil {
			return nil, storageError(err)
		}
	}

	return s.GetUserAccounts(userID)
}

// GetAccount reads an account without locking it.
func (s *ledgerStore) GetAccount(userID string, accountType models.AccountType) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("user_id = ? AND account_type = ?", userID, accountType).First(&account).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrAccountNotFound)
	}
	return &account, nil
}

// GetUserAccounts lists a user's accounts ordered by account type.
func (s *ledgerStore) GetUserAccounts(userID string) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Order("account_type ASC").Find(&accounts).Error; err != nil {
		return nil, storageError(err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// GetAccountForUpdate reads an account with an exclusive row lock held until
// tx commits or rolls back. A missing account is never auto-created.
func (s *ledgerStore) GetAccountForUpdate(tx *gorm.DB, userID string, accountType models.AccountType) (*models.Account, error) {
	var account models.Account
	err := tx.Clauses(forUpdate).
		Where("user_id = ? AND account_type = ?", userID, accountType).
		First(&account).Error
	if err != nil {
		return nil, notFoundOr(err, apperrors.WithMessage(apperrors.ErrAccountNotFound, string(accountType)+" account not found"))
	}
	return &account, nil
}

// SetBalance writes a balance unconditionally. Callers validate first.
func (s *ledgerStore) SetBalance(tx *gorm.DB, accountID string, newBalance models.Money) error {
	result := tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{"balance": newBalance, "updated_at": time.Now()})
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// AppendTransaction writes one immutable ledger row.
func (s *ledgerStore) AppendTransaction(tx *gorm.DB, entry LedgerEntry) (*models.Transaction, error) {
	if entry.Category == "" {
		entry.Category = "General"
	}
	if entry.Status == "" {
		entry.Status = models.TransactionStatusCompleted
	}

	transaction := &models.Transaction{
		UserID:          entry.UserID,
		AccountID:       entry.AccountID,
		Type:            entry.Type,
		Category:        entry.Category,
		Amount:          entry.Amount,
		Description:     entry.Description,
		Status:          entry.Status,
		TransactionDate: time.Now(),
	}
	if err := tx.Create(transaction).Error; err != nil {
		return nil, storageError(err)
	}
	return transaction, nil
}

// ListTransactions returns a user's ledger newest first.
func (s *ledgerStore) ListTransactions(userID string, filter TransactionFilter) (*pagination.ListResponse[models.Transaction], error) {
	filter.Defaults()

	q := s.withAccountType().Where("transactions.user_id = ?", userID)
	if filter.AccountType != nil {
		q = q.Where("accounts.account_type = ?", *filter.AccountType)
	}
	if filter.Category != nil {
		q = q.Where("transactions.category = ?", *filter.Category)
	}
	if filter.Type != nil {
		q = q.Where("transactions.type = ?", *filter.Type)
	}

	var transactions []models.Transaction
	if err := q.Order("transactions.transaction_date DESC").
		Order("transactions.id DESC").
		Scopes(pagination.Paginate(filter.Window)).
		Find(&transactions).Error; err != nil {
		return nil, storageError(err)
	}

	result := pagination.NewListResponse(transactions, filter.Window)
	return &result, nil
}

// GetTransaction reads one ledger row owned by the user.
func (s *ledgerStore) GetTransaction(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.withAccountType().
		Where("transactions.id = ? AND transactions.user_id = ?", transactionID, userID).
		First(&transaction).Error
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrTransactionNotFound)
	}
	return &transaction, nil
}

func (s *ledgerStore) withAccountType() *gorm.DB {
	return s.db.Model(&models.Transaction{}).
		Select("transactions.*, accounts.account_type").
		Joins("JOIN accounts ON accounts.id = transactions.account_id")
}
