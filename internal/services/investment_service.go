package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
)

// investmentService handles investment purchases, revaluation and liquidation.
type investmentService struct {
	db      *gorm.DB
	ledger  LedgerStorer
	mutator BalanceMutator
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB, ledger LedgerStorer, mutator BalanceMutator) InvestmentServicer {
	return &investmentService{db: db, ledger: ledger, mutator: mutator}
}

// CreateInvestment buys a position with money from the main account. If the
// debit fails nothing is written.
func (s *investmentService) CreateInvestment(userID string, in CreateInvestmentInput) (*models.Investment, *MutationResult, error) {
	var missing []string
	if strings.TrimSpace(in.InvestmentName) == "" {
		missing = append(missing, "investment_name")
	}
	if strings.TrimSpace(in.InvestmentType) == "" {
		missing = append(missing, "investment_type")
	}
	if len(missing) > 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "missing fields: "+strings.Join(missing, ", "))
	}
	if !in.AmountInvested.IsPositive() {
		return nil, nil, apperrors.ErrInvalidAmount
	}

	currentValue := in.AmountInvested
	if in.CurrentValue != nil {
		if *in.CurrentValue < 0 {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "current_value must not be negative")
		}
		currentValue = *in.CurrentValue
	}
	purchased := in.PurchaseDate
	if purchased.IsZero() {
		purchased = time.Now().Truncate(24 * time.Hour)
	}

	investment := &models.Investment{
		UserID:         userID,
		InvestmentName: in.InvestmentName,
		InvestmentType: in.InvestmentType,
		AmountInvested: in.AmountInvested,
		CurrentValue:   currentValue,
		PurchaseDate:   purchased,
		MaturityDate:   in.MaturityDate,
		Description:    in.Description,
		Status:         models.InvestmentStatusActive,
	}
	investment.RecomputeReturn()

	var mutation *MutationResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		var err error
		mutation, err = s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: models.AccountTypeMain,
			Amount:      in.AmountInvested,
			Operation:   models.OperationSubtract,
			Category:    "Investment",
			Description: fmt.Sprintf("Investment in: %s", in.InvestmentName),
		})
		if err != nil {
			return err
		}
		return tx.Create(investment).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return investment, mutation, nil
}

// ListInvestments returns the user's investments, latest purchase first,
// with totals across the returned rows.
func (s *investmentService) ListInvestments(userID string, status *models.InvestmentStatus) (*InvestmentList, error) {
	q := s.db.Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var investments []models.Investment
	if err := q.Order("purchase_date DESC").Order("id DESC").Find(&investments).Error; err != nil {
		return nil, storageError(err)
	}
	if investments == nil {
		investments = []models.Investment{}
	}

	summary, err := summarizePortfolio(investments)
	if err != nil {
		return nil, err
	}
	return &InvestmentList{Investments: investments, Summary: summary}, nil
}

// summarizePortfolio totals invested and current value across investments.
func summarizePortfolio(investments []models.Investment) (PortfolioSummary, error) {
	var summary PortfolioSummary
	for _, inv := range investments {
		invested, err := summary.TotalInvested.Add(inv.AmountInvested)
		if err != nil {
			return PortfolioSummary{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		current, err := summary.TotalCurrentValue.Add(inv.CurrentValue)
		if err != nil {
			return PortfolioSummary{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		summary.TotalInvested, summary.TotalCurrentValue = invested, current
	}
	summary.TotalReturnPercentage = models.ReturnPercentage(summary.TotalInvested, summary.TotalCurrentValue)
	return summary, nil
}

// UpdateInvestmentValue revalues an active investment and re-derives its return.
func (s *investmentService) UpdateInvestmentValue(userID, investmentID string, currentValue models.Money) (*models.Investment, error) {
	if currentValue < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "current_value must not be negative")
	}

	var investment models.Investment
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).
			Where("id = ? AND user_id = ?", investmentID, userID).
			First(&investment).Error; err != nil {
			return notFoundOr(err, apperrors.ErrInvestmentNotFound)
		}
		if investment.Status == models.InvestmentStatusSold {
			return apperrors.ErrInvestmentSold
		}

		investment.CurrentValue = currentValue
		investment.RecomputeReturn()
		return tx.Model(&investment).Updates(map[string]interface{}{
			"current_value":     investment.CurrentValue,
			"return_percentage": investment.ReturnPercentage,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

// LiquidateInvestment credits the current value back to the main account and
// marks the investment sold. A worthless position is closed without a ledger row.
func (s *investmentService) LiquidateInvestment(userID, investmentID string) (*LiquidationResult, error) {
	var result LiquidationResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		var investment models.Investment
		if err := tx.Clauses(forUpdate).
			Where("id = ? AND user_id = ?", investmentID, userID).
			First(&investment).Error; err != nil {
			return notFoundOr(err, apperrors.ErrInvestmentNotFound)
		}
		if investment.Status == models.InvestmentStatusSold {
			return apperrors.ErrInvestmentSold
		}

		result.LiquidatedAmount = investment.CurrentValue
		if investment.CurrentValue.IsPositive() {
			mutation, err := s.mutator.Mutate(tx, MutationRequest{
				UserID:      userID,
				AccountType: models.AccountTypeMain,
				Amount:      investment.CurrentValue,
				Operation:   models.OperationAdd,
				Category:    "Investment",
				Description: fmt.Sprintf("Liquidated investment: %s", investment.InvestmentName),
			})
			if err != nil {
				return err
			}
			result.NewBalance = mutation.NewBalance
			result.TransactionID = &mutation.TransactionID
		} else {
			main, err := s.ledger.GetAccountForUpdate(tx, userID, models.AccountTypeMain)
			if err != nil {
				return err
			}
			result.NewBalance = main.Balance
		}

		return tx.Model(&investment).Update("status", models.InvestmentStatusSold).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
