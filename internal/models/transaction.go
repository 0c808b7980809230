package models

import "time"

// EntryType is the direction of a ledger entry.
type EntryType string

const (
	EntryTypeCredit EntryType = "credit"
	EntryTypeDebit  EntryType = "debit"
)

// Transaction statuses.
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusFailed    = "failed"
)

// Transaction is an append-only ledger entry. One row is written per balance
// mutation and never updated afterwards.
type Transaction struct {
	Base
	UserID          string    `gorm:"type:uuid;not null;index:idx_transactions_user_date" json:"user_id"`
	AccountID       string    `gorm:"type:uuid;not null;index" json:"account_id"`
	Type            EntryType `gorm:"type:varchar(10);not null" json:"type"`
	Category        string    `gorm:"type:varchar(50);not null;default:'General'" json:"category"`
	Amount          Money     `gorm:"type:bigint;not null" json:"amount"`
	Description     string    `json:"description"`
	Status          string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	TransactionDate time.Time `gorm:"not null;index:idx_transactions_user_date" json:"transaction_date"`

	// Filled from the owning account on reads.
	AccountType AccountType `gorm:"->;-:migration" json:"account_type,omitempty"`
}

// LedgerOperation is the direction of a balance mutation.
type LedgerOperation string

const (
	OperationAdd      LedgerOperation = "add"
	OperationSubtract LedgerOperation = "subtract"
)

// EntryType returns the ledger entry written for op.
func (op LedgerOperation) EntryType() (EntryType, bool) {
	switch op {
	case OperationAdd:
		return EntryTypeCredit, true
	case OperationSubtract:
		return EntryTypeDebit, true
	}
	return "", false
}
