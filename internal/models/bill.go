package models

import "time"

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

// BillFrequency is the recurrence unit of a recurring bill.
type BillFrequency string

const (
	BillFrequencyWeekly  BillFrequency = "weekly"
	BillFrequencyMonthly BillFrequency = "monthly"
	BillFrequencyYearly  BillFrequency = "yearly"
)

// Next returns t advanced by one unit of f. Month overflow normalises the
// way time.AddDate does (Jan 31 + 1 month = Mar 3 or Mar 2).
func (f BillFrequency) Next(t time.Time) (time.Time, bool) {
	switch f {
	case BillFrequencyWeekly:
		return t.AddDate(0, 0, 7), true
	case BillFrequencyMonthly:
		return t.AddDate(0, 1, 0), true
	case BillFrequencyYearly:
		return t.AddDate(1, 0, 0), true
	}
	return t, false
}

// Bill is a payable obligation. Paying it debits the main account.
type Bill struct {
	Base
	UserID              string         `gorm:"type:uuid;not null;index" json:"user_id"`
	BillType            string         `gorm:"type:varchar(50);not null" json:"bill_type"`
	BillerName          string         `gorm:"type:varchar(100);not null" json:"biller_name"`
	Amount              Money          `gorm:"type:bigint;not null" json:"amount"`
	DueDate             time.Time      `gorm:"not null" json:"due_date"`
	Status              BillStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	IsRecurring         bool           `gorm:"not null;default:false" json:"is_recurring"`
	RecurrenceFrequency *BillFrequency `gorm:"type:varchar(20)" json:"recurrence_frequency,omitempty"`
	AccountNumber       string         `json:"account_number,omitempty"`
	ReferenceNumber     string         `json:"reference_number,omitempty"`
	PaidAt              *time.Time     `json:"paid_at,omitempty"`
}
