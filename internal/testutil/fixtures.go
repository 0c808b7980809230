package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finvault/internal/models"
	"finvault/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a fresh caller identity.
func NewUserID() string {
	return uuid.New()
}

// CreateTestAccount creates an account of the given type with a balance in minor units.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string, accountType models.AccountType, balance models.Money) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:      userID,
		AccountType: accountType,
		Balance:     balance,
		Currency:    "NGN",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test %s account: %v", accountType, err)
	}
	return account
}

// CreateTestAccounts creates the main and stash accounts for userID.
func CreateTestAccounts(t *testing.T, db *gorm.DB, userID string, main, stash models.Money) (*models.Account, *models.Account) {
	t.Helper()
	return CreateTestAccount(t, db, userID, models.AccountTypeMain, main),
		CreateTestAccount(t, db, userID, models.AccountTypeStash, stash)
}

// GetBalance reads the stored balance of an account, failing the test if missing.
func GetBalance(t *testing.T, db *gorm.DB, userID string, accountType models.AccountType) models.Money {
	t.Helper()

	var account models.Account
	if err := db.Where("user_id = ? AND account_type = ?", userID, accountType).First(&account).Error; err != nil {
		t.Fatalf("failed to load %s account: %v", accountType, err)
	}
	return account.Balance
}

// CountTransactions counts ledger rows owned by userID.
func CountTransactions(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	return n
}

// CreateTestBill creates a pending, non-recurring bill due in a week.
func CreateTestBill(t *testing.T, db *gorm.DB, userID string, amount models.Money) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:     userID,
		BillType:   "electricity",
		BillerName: fmt.Sprintf("Test Biller %d", nextID()),
		Amount:     amount,
		DueDate:    time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		Status:     models.BillStatusPending,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestRecurringBill creates a pending bill that recurs with freq.
func CreateTestRecurringBill(t *testing.T, db *gorm.DB, userID string, amount models.Money, due time.Time, freq models.BillFrequency) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:              userID,
		BillType:            "internet",
		BillerName:          fmt.Sprintf("Test ISP %d", nextID()),
		Amount:              amount,
		DueDate:             due,
		Status:              models.BillStatusPending,
		IsRecurring:         true,
		RecurrenceFrequency: &freq,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test recurring bill: %v", err)
	}
	return bill
}

// CreateTestPlan creates an active savings plan.
func CreateTestPlan(t *testing.T, db *gorm.DB, userID string, target, current models.Money) *models.SavingsPlan {
	t.Helper()

	plan := &models.SavingsPlan{
		UserID:        userID,
		PlanName:      fmt.Sprintf("Test Plan %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		Frequency:     models.PlanFrequencyMonthly,
		StartDate:     time.Now().Truncate(24 * time.Hour),
		Status:        models.PlanStatusActive,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test savings plan: %v", err)
	}
	return plan
}

// CreateTestCircle creates an active public circle with no members.
func CreateTestCircle(t *testing.T, db *gorm.DB, creatorID string, target, current models.Money, maxMembers *int) *models.Circle {
	t.Helper()

	circle := &models.Circle{
		CreatorID:     creatorID,
		CircleName:    fmt.Sprintf("Test Circle %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		MaxMembers:    maxMembers,
		IsPublic:      true,
		Status:        models.CircleStatusActive,
	}
	if err := db.Create(circle).Error; err != nil {
		t.Fatalf("failed to create test circle: %v", err)
	}
	return circle
}

// CreateTestMember adds an active membership and bumps the circle's member count.
func CreateTestMember(t *testing.T, db *gorm.DB, circleID, userID string) *models.CircleMember {
	t.Helper()

	member := &models.CircleMember{
		CircleID: circleID,
		UserID:   userID,
		Status:   models.MemberStatusActive,
		JoinedAt: time.Now(),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test circle member: %v", err)
	}
	if err := db.Model(&models.Circle{}).Where("id = ?", circleID).
		UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error; err != nil {
		t.Fatalf("failed to bump member count: %v", err)
	}
	return member
}

// CreateTestInvestment creates an active investment without touching any balance.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, invested, current models.Money) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:         userID,
		InvestmentName: fmt.Sprintf("Test Fund %d", nextID()),
		InvestmentType: "mutual_fund",
		AmountInvested: invested,
		CurrentValue:   current,
		PurchaseDate:   time.Now().Truncate(24 * time.Hour),
		Status:         models.InvestmentStatusActive,
	}
	inv.RecomputeReturn()
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
