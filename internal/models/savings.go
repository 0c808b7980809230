package models

import "time"

// PlanStatus is the lifecycle state of a savings plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusPaused    PlanStatus = "paused"
)

// PlanFrequency is how often the user intends to save.
type PlanFrequency string

const (
	PlanFrequencyDaily   PlanFrequency = "daily"
	PlanFrequencyWeekly  PlanFrequency = "weekly"
	PlanFrequencyMonthly PlanFrequency = "monthly"
)

// SavingsType is the direction of a savings movement.
type SavingsType string

const (
	SavingsDeposit    SavingsType = "deposit"
	SavingsWithdrawal SavingsType = "withdrawal"
)

// SavingsPlan holds a virtual balance funded from the main account.
// CurrentAmount may exceed TargetAmount.
type SavingsPlan struct {
	Base
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanName      string        `gorm:"type:varchar(100);not null" json:"plan_name"`
	TargetAmount  Money         `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount Money         `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Frequency     PlanFrequency `gorm:"type:varchar(20);not null" json:"frequency"`
	StartDate     time.Time     `gorm:"not null" json:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	Description   string        `json:"description,omitempty"`
	AutoSave      bool          `gorm:"not null;default:false" json:"auto_save"`
	Status        PlanStatus    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	Progress float64 `gorm:"-" json:"progress"`
}

// FillProgress sets the read-time progress percentage.
func (p *SavingsPlan) FillProgress() {
	p.Progress = Percentage(p.CurrentAmount, p.TargetAmount)
}

// SavingsTransaction records a movement into or out of a savings plan.
type SavingsTransaction struct {
	Base
	PlanID          string      `gorm:"type:uuid;not null;index" json:"plan_id"`
	UserID          string      `gorm:"type:uuid;not null" json:"user_id"`
	Amount          Money       `gorm:"type:bigint;not null" json:"amount"`
	TransactionType SavingsType `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Notes           string      `json:"notes,omitempty"`
}
