package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
)

// billService handles bill-related business logic.
type billService struct {
	db      *gorm.DB
	mutator BalanceMutator
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB, mutator BalanceMutator) BillServicer {
	return &billService{db: db, mutator: mutator}
}

// CreateBill records a pending bill for the user.
func (s *billService) CreateBill(userID string, in CreateBillInput) (*models.Bill, error) {
	var missing []string
	if strings.TrimSpace(in.BillType) == "" {
		missing = append(missing, "bill_type")
	}
	if strings.TrimSpace(in.BillerName) == "" {
		missing = append(missing, "biller_name")
	}
	if in.DueDate.IsZero() {
		missing = append(missing, "due_date")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "missing fields: "+strings.Join(missing, ", "))
	}
	if !in.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	var freq *models.BillFrequency
	if in.IsRecurring {
		if in.RecurrenceFrequency == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recurring bills need a recurrence_frequency")
		}
		if _, ok := in.RecurrenceFrequency.Next(in.DueDate); !ok {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recurrence_frequency must be weekly, monthly or yearly")
		}
		freq = in.RecurrenceFrequency
	}

	bill := &models.Bill{
		UserID:              userID,
		BillType:            in.BillType,
		BillerName:          in.BillerName,
		Amount:              in.Amount,
		DueDate:             in.DueDate,
		Status:              models.BillStatusPending,
		IsRecurring:         in.IsRecurring,
		RecurrenceFrequency: freq,
		AccountNumber:       in.AccountNumber,
		ReferenceNumber:     in.ReferenceNumber,
	}
	if err := s.db.Create(bill).Error; err != nil {
		return nil, storageError(err)
	}
	return bill, nil
}

// ListBills returns the user's bills, soonest due first.
func (s *billService) ListBills(userID string, status *models.BillStatus) ([]models.Bill, error) {
	q := s.db.Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var bills []models.Bill
	if err := q.Order("due_date ASC").Find(&bills).Error; err != nil {
		return nil, storageError(err)
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}

// GetBill retrieves a bill by ID for a specific user.
func (s *billService) GetBill(userID, billID string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrBillNotFound)
	}
	return &bill, nil
}

// PayBill debits the main account by the bill amount and marks the bill paid.
// A recurring bill spawns its next occurrence in the same unit of work, so a
// failure there also undoes the payment.
func (s *billService) PayBill(userID, billID string) (*PayBillResult, error) {
	var result PayBillResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		var bill models.Bill
		if err := tx.Clauses(forUpdate).
			Where("id = ? AND user_id = ?", billID, userID).
			First(&bill).Error; err != nil {
			return notFoundOr(err, apperrors.ErrBillNotFound)
		}
		if bill.Status == models.BillStatusPaid {
			return apperrors.ErrAlreadyPaid
		}

		mutation, err := s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: models.AccountTypeMain,
			Amount:      bill.Amount,
			Operation:   models.OperationSubtract,
			Category:    "Bills",
			Description: fmt.Sprintf("Bill payment: %s - %s", bill.BillerName, bill.BillType),
		})
		if err != nil {
			return err
		}

		paidAt := time.Now()
		if err := tx.Model(&bill).Updates(map[string]interface{}{
			"status":  models.BillStatusPaid,
			"paid_at": paidAt,
		}).Error; err != nil {
			return err
		}

		result = PayBillResult{
			BillID:        bill.ID,
			NewBalance:    mutation.NewBalance,
			AmountPaid:    bill.Amount,
			TransactionID: mutation.TransactionID,
		}

		if bill.IsRecurring && bill.RecurrenceFrequency != nil {
			next, err := nextOccurrence(&bill)
			if err != nil {
				return err
			}
			if err := tx.Create(next).Error; err != nil {
				return err
			}
			result.NextBillID = &next.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// nextOccurrence builds the pending bill that follows a paid recurring one.
func nextOccurrence(bill *models.Bill) (*models.Bill, error) {
	due, ok := bill.RecurrenceFrequency.Next(bill.DueDate)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"unknown recurrence_frequency "+string(*bill.RecurrenceFrequency))
	}
	freq := *bill.RecurrenceFrequency
	return &models.Bill{
		UserID:              bill.UserID,
		BillType:            bill.BillType,
		BillerName:          bill.BillerName,
		Amount:              bill.Amount,
		DueDate:             due,
		Status:              models.BillStatusPending,
		IsRecurring:         true,
		RecurrenceFrequency: &freq,
		AccountNumber:       bill.AccountNumber,
		ReferenceNumber:     bill.ReferenceNumber,
	}, nil
}
