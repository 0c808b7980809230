package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
)

// savingsService handles savings plans and their deposits/withdrawals.
type savingsService struct {
	db      *gorm.DB
	mutator BalanceMutator
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB, mutator BalanceMutator) SavingsServicer {
	return &savingsService{db: db, mutator: mutator}
}

// CreatePlan opens an empty savings plan.
func (s *savingsService) CreatePlan(userID string, in CreatePlanInput) (*models.SavingsPlan, error) {
	var missing []string
	if strings.TrimSpace(in.PlanName) == "" {
		missing = append(missing, "plan_name")
	}
	if in.Frequency == "" {
		missing = append(missing, "frequency")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "missing fields: "+strings.Join(missing, ", "))
	}
	if !in.TargetAmount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	start := in.StartDate
	if start.IsZero() {
		start = time.Now().Truncate(24 * time.Hour)
	}
	if in.EndDate != nil && in.EndDate.Before(start) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must not be before start_date")
	}

	plan := &models.SavingsPlan{
		UserID:       userID,
		PlanName:     in.PlanName,
		TargetAmount: in.TargetAmount,
		Frequency:    in.Frequency,
		StartDate:    start,
		EndDate:      in.EndDate,
		Description:  in.Description,
		AutoSave:     in.AutoSave,
		Status:       models.PlanStatusActive,
	}
	if err := s.db.Create(plan).Error; err != nil {
		return nil, storageError(err)
	}
	plan.FillProgress()
	return plan, nil
}

// ListPlans returns the user's plans newest first with read-time progress.
func (s *savingsService) ListPlans(userID string, status *models.PlanStatus) ([]models.SavingsPlan, error) {
	q := s.db.Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var plans []models.SavingsPlan
	if err := q.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, storageError(err)
	}
	if plans == nil {
		plans = []models.SavingsPlan{}
	}
	for i := range plans {
		plans[i].FillProgress()
	}
	return plans, nil
}

// UpdatePlan applies a partial update under the plan lock. Status is re-derived
// afterwards: a plan whose current amount meets its target is completed, and a
// completed plan whose target is raised above it becomes active again.
func (s *savingsService) UpdatePlan(userID, planID string, in UpdatePlanInput) (*models.SavingsPlan, error) {
	if in.PlanName == nil && in.TargetAmount == nil && in.Status == nil && in.AutoSave == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no fields to update")
	}
	if in.PlanName != nil && strings.TrimSpace(*in.PlanName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "plan_name must not be empty")
	}
	if in.TargetAmount != nil && !in.TargetAmount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if in.Status != nil && *in.Status != models.PlanStatusActive && *in.Status != models.PlanStatusPaused {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active or paused")
	}

	var plan models.SavingsPlan
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).
			Where("id = ? AND user_id = ?", planID, userID).
			First(&plan).Error; err != nil {
			return notFoundOr(err, apperrors.ErrPlanNotFound)
		}

		if in.PlanName != nil {
			plan.PlanName = *in.PlanName
		}
		if in.TargetAmount != nil {
			plan.TargetAmount = *in.TargetAmount
		}
		if in.AutoSave != nil {
			plan.AutoSave = *in.AutoSave
		}
		switch {
		case plan.CurrentAmount >= plan.TargetAmount:
			plan.Status = models.PlanStatusCompleted
		case in.Status != nil:
			plan.Status = *in.Status
		case plan.Status == models.PlanStatusCompleted:
			plan.Status = models.PlanStatusActive
		}

		return tx.Model(&plan).Updates(map[string]interface{}{
			"plan_name":     plan.PlanName,
			"target_amount": plan.TargetAmount,
			"auto_save":     plan.AutoSave,
			"status":        plan.Status,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	plan.FillProgress()
	return &plan, nil
}

// RecordTransaction moves money between the main account and a plan.
// A deposit debits main; a withdrawal credits main and needs enough in the plan.
func (s *savingsService) RecordTransaction(userID, planID string, txType models.SavingsType, amount models.Money, notes string) (*SavingsResult, error) {
	var op models.LedgerOperation
	switch txType {
	case models.SavingsDeposit:
		op = models.OperationSubtract
	case models.SavingsWithdrawal:
		op = models.OperationAdd
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction_type must be deposit or withdrawal")
	}
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	var result SavingsResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		var plan models.SavingsPlan
		if err := tx.Clauses(forUpdate).
			Where("id = ? AND user_id = ?", planID, userID).
			First(&plan).Error; err != nil {
			return notFoundOr(err, apperrors.ErrPlanNotFound)
		}

		var planAmount models.Money
		if txType == models.SavingsDeposit {
			var err error
			if planAmount, err = plan.CurrentAmount.Add(amount); err != nil {
				return apperrors.Wrap(apperrors.ErrInvalidAmount, err)
			}
		} else {
			if plan.CurrentAmount < amount {
				return apperrors.ErrInsufficientPlanBalance
			}
			planAmount = plan.CurrentAmount - amount
		}

		mutation, err := s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: models.AccountTypeMain,
			Amount:      amount,
			Operation:   op,
			Category:    "Savings",
			Description: fmt.Sprintf("Savings plan: %s", plan.PlanName),
		})
		if err != nil {
			return err
		}

		status := plan.Status
		if planAmount >= plan.TargetAmount {
			status = models.PlanStatusCompleted
		}
		if err := tx.Model(&plan).Updates(map[string]interface{}{
			"current_amount": planAmount,
			"status":         status,
		}).Error; err != nil {
			return err
		}

		movement := &models.SavingsTransaction{
			PlanID:          plan.ID,
			UserID:          userID,
			Amount:          amount,
			TransactionType: txType,
			Notes:           notes,
		}
		if err := tx.Create(movement).Error; err != nil {
			return err
		}

		result = SavingsResult{
			NewPlanAmount:        planAmount,
			NewAccountBalance:    mutation.NewBalance,
			PlanStatus:           status,
			TransactionID:        mutation.TransactionID,
			SavingsTransactionID: movement.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
