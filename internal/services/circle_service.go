package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
)

// circleService handles circle membership and contributions.
type circleService struct {
	db      *gorm.DB
	mutator BalanceMutator
}

// NewCircleService creates a new CircleServicer.
func NewCircleService(db *gorm.DB, mutator BalanceMutator) CircleServicer {
	return &circleService{db: db, mutator: mutator}
}

// CreateCircle creates a circle with the creator as its first active member.
func (s *circleService) CreateCircle(userID string, in CreateCircleInput) (*models.Circle, error) {
	if strings.TrimSpace(in.CircleName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "missing fields: circle_name")
	}
	if !in.TargetAmount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if in.MaxMembers != nil && *in.MaxMembers < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "max_members must be at least 1")
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}
	category := in.Category
	if category == "" {
		category = "General"
	}

	circle := &models.Circle{
		CreatorID:    userID,
		CircleName:   in.CircleName,
		Description:  in.Description,
		TargetAmount: in.TargetAmount,
		MemberCount:  1,
		MaxMembers:   in.MaxMembers,
		IsPublic:     isPublic,
		Category:     category,
		Status:       models.CircleStatusActive,
	}

	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(circle).Error; err != nil {
			return err
		}
		return tx.Create(&models.CircleMember{
			CircleID: circle.ID,
			UserID:   userID,
			Status:   models.MemberStatusActive,
			JoinedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	circle.FillProgress()
	return circle, nil
}

// ListCircles returns circles newest first. "mine" covers circles the user
// created or actively belongs to; "public" covers open, active circles.
func (s *circleService) ListCircles(userID string, filter models.CircleFilter) ([]models.Circle, error) {
	q := s.db.Model(&models.Circle{})
	switch filter {
	case "", models.CircleFilterAll:
	case models.CircleFilterMine:
		active := s.db.Model(&models.CircleMember{}).
			Select("circle_id").
			Where("user_id = ? AND status = ?", userID, models.MemberStatusActive)
		q = q.Where("creator_id = ? OR id IN (?)", userID, active)
	case models.CircleFilterPublic:
		q = q.Where("is_public = ? AND status = ?", true, models.CircleStatusActive)
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "filter must be all, mine or public")
	}

	var circles []models.Circle
	if err := q.Order("created_at DESC").Find(&circles).Error; err != nil {
		return nil, storageError(err)
	}
	if circles == nil {
		circles = []models.Circle{}
	}
	for i := range circles {
		circles[i].FillProgress()
	}
	return circles, nil
}

// GetCircle returns a circle with its active members.
func (s *circleService) GetCircle(circleID string) (*models.Circle, error) {
	var circle models.Circle
	err := s.db.
		Preload("Members", "status = ?", models.MemberStatusActive).
		Where("id = ?", circleID).
		First(&circle).Error
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrCircleNotFound)
	}
	circle.FillProgress()
	return &circle, nil
}

// JoinCircle adds the user as an active member. The member count is derived
// from the membership rows under the circle lock rather than incremented.
func (s *circleService) JoinCircle(userID, circleID string) (*models.CircleMember, error) {
	var member models.CircleMember
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		circle, err := lockCircle(tx, circleID)
		if err != nil {
			return err
		}
		if circle.Status != models.CircleStatusActive {
			return apperrors.ErrCircleInactive
		}

		count, err := countActiveMembers(tx, circleID)
		if err != nil {
			return err
		}
		if circle.IsFull(count) {
			return apperrors.ErrCircleFull
		}

		findErr := tx.Where("circle_id = ? AND user_id = ?", circleID, userID).First(&member).Error
		switch {
		case findErr == nil && member.Status == models.MemberStatusActive:
			return apperrors.ErrAlreadyMember
		case findErr == nil:
			// Rejoining keeps the earlier contribution history on the same row.
			member.Status = models.MemberStatusActive
			member.JoinedAt = time.Now()
			if err := tx.Model(&member).Updates(map[string]interface{}{
				"status":    member.Status,
				"joined_at": member.JoinedAt,
			}).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			member = models.CircleMember{
				CircleID: circleID,
				UserID:   userID,
				Status:   models.MemberStatusActive,
				JoinedAt: time.Now(),
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		return syncMemberCount(tx, circleID)
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// LeaveCircle marks the user's membership as left.
func (s *circleService) LeaveCircle(userID, circleID string) error {
	return withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		if _, err := lockCircle(tx, circleID); err != nil {
			return err
		}

		result := tx.Model(&models.CircleMember{}).
			Where("circle_id = ? AND user_id = ? AND status = ?", circleID, userID, models.MemberStatusActive).
			Update("status", models.MemberStatusLeft)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotAMember
		}

		return syncMemberCount(tx, circleID)
	})
}

// ContributeToCircle moves amount from the user's main account into the
// circle. The circle completes once its current amount reaches the target.
func (s *circleService) ContributeToCircle(userID, circleID string, amount models.Money) (*ContributionResult, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	var result ContributionResult
	err := withinUnitOfWork(s.db, func(tx *gorm.DB) error {
		circle, err := lockCircle(tx, circleID)
		if err != nil {
			return err
		}

		var member models.CircleMember
		if err := tx.Clauses(forUpdate).
			Where("circle_id = ? AND user_id = ? AND status = ?", circleID, userID, models.MemberStatusActive).
			First(&member).Error; err != nil {
			return notFoundOr(err, apperrors.ErrNotAMember)
		}

		mutation, err := s.mutator.Mutate(tx, MutationRequest{
			UserID:      userID,
			AccountType: models.AccountTypeMain,
			Amount:      amount,
			Operation:   models.OperationSubtract,
			Category:    "Circle",
			Description: fmt.Sprintf("Contribution to circle: %s", circle.CircleName),
		})
		if err != nil {
			return err
		}

		contribution, err := member.ContributionAmount.Add(amount)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidAmount, err)
		}
		if err := tx.Model(&member).Update("contribution_amount", contribution).Error; err != nil {
			return err
		}

		circleAmount, err := circle.CurrentAmount.Add(amount)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidAmount, err)
		}
		status := circle.Status
		if circleAmount >= circle.TargetAmount {
			status = models.CircleStatusCompleted
		}
		if err := tx.Model(circle).Updates(map[string]interface{}{
			"current_amount": circleAmount,
			"status":         status,
		}).Error; err != nil {
			return err
		}

		result = ContributionResult{
			NewContribution: contribution,
			NewCircleAmount: circleAmount,
			NewBalance:      mutation.NewBalance,
			CircleStatus:    status,
			TransactionID:   mutation.TransactionID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func lockCircle(tx *gorm.DB, circleID string) (*models.Circle, error) {
	var circle models.Circle
	if err := tx.Clauses(forUpdate).Where("id = ?", circleID).First(&circle).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrCircleNotFound)
	}
	return &circle, nil
}

func countActiveMembers(tx *gorm.DB, circleID string) (int64, error) {
	var n int64
	err := tx.Model(&models.CircleMember{}).
		Where("circle_id = ? AND status = ?", circleID, models.MemberStatusActive).
		Count(&n).Error
	return n, err
}

// syncMemberCount rewrites member_count from the membership rows.
func syncMemberCount(tx *gorm.DB, circleID string) error {
	n, err := countActiveMembers(tx, circleID)
	if err != nil {
		return err
	}
	return tx.Model(&models.Circle{}).Where("id = ?", circleID).Update("member_count", n).Error
}
