package models

// AccountType names one of a user's balances.
type AccountType string

const (
	AccountTypeMain  AccountType = "main"
	AccountTypeStash AccountType = "stash"
)

// DefaultAccountTypes are provisioned for every user.
var DefaultAccountTypes = []AccountType{AccountTypeMain, AccountTypeStash}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeMain, AccountTypeStash:
		return true
	}
	return false
}

// Account holds one balance per (user, account type). Balance is only ever
// written by the balance mutator and never goes below zero.
type Account struct {
	Base
	UserID      string      `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_user_type" json:"user_id"`
	AccountType AccountType `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_user_type" json:"account_type"`
	Balance     Money       `gorm:"type:bigint;not null;default:0" json:"balance"`
	Currency    string      `gorm:"type:varchar(3);not null;default:'NGN'" json:"currency"`
}
