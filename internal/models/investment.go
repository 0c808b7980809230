package models

import "time"

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentStatusActive InvestmentStatus = "active"
	InvestmentStatusSold   InvestmentStatus = "sold"
)

// Investment is a position bought with money from the main account.
type Investment struct {
	Base
	UserID           string           `gorm:"type:uuid;not null;index" json:"user_id"`
	InvestmentName   string           `gorm:"type:varchar(100);not null" json:"investment_name"`
	InvestmentType   string           `gorm:"type:varchar(50);not null" json:"investment_type"`
	AmountInvested   Money            `gorm:"type:bigint;not null" json:"amount_invested"`
	CurrentValue     Money            `gorm:"type:bigint;not null" json:"current_value"`
	ReturnPercentage float64          `gorm:"not null;default:0" json:"return_percentage"`
	PurchaseDate     time.Time        `gorm:"not null" json:"purchase_date"`
	MaturityDate     *time.Time       `json:"maturity_date,omitempty"`
	Description      string           `json:"description,omitempty"`
	Status           InvestmentStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}

// RecomputeReturn derives ReturnPercentage from the invested and current amounts.
func (i *Investment) RecomputeReturn() {
	i.ReturnPercentage = ReturnPercentage(i.AmountInvested, i.CurrentValue)
}
