package models

import (
	"time"

	"finvault/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Ledger rows are never
// soft-deleted, so there is no DeletedAt.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Transaction{},
		&Bill{},
		&SavingsPlan{},
		&SavingsTransaction{},
		&Circle{},
		&CircleMember{},
		&Investment{},
		&AuditLog{},
	}
}
