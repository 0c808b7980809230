package services

import (
	"errors"
	"math/rand"
	"testing"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/testutil"
)

// TestLedgerConservation drives a seeded random mix of operations and checks
// that every account's credits minus debits equals its balance change.
func TestLedgerConservation(t *testing.T) {
	s := newTestServices(t)
	defer s.close(t)

	const initialMain, initialStash = models.Money(500000), models.Money(100000)
	userID := s.newFundedUser(t, initialMain, initialStash)
	plan := testutil.CreateTestPlan(t, s.db, userID, 10000000, 0)
	circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 10000000, 0, nil)
	testutil.CreateTestMember(t, s.db, circle.ID, userID)

	rng := rand.New(rand.NewSource(42))
	types := []models.AccountType{models.AccountTypeMain, models.AccountTypeStash}

	for i := 0; i < 200; i++ {
		amount := models.Money(rng.Int63n(50000) + 1)
		var err error
		switch rng.Intn(6) {
		case 0:
			op := models.OperationAdd
			if rng.Intn(2) == 0 {
				op = models.OperationSubtract
			}
			_, err = s.accounts.UpdateBalance(userID, types[rng.Intn(2)], amount, op, "", "")
		case 1:
			from := rng.Intn(2)
			_, err = s.accounts.Transfer(userID, types[from], types[1-from], amount, "")
		case 2:
			bill := testutil.CreateTestBill(t, s.db, userID, amount)
			_, err = s.bills.PayBill(userID, bill.ID)
		case 3:
			txType := models.SavingsDeposit
			if rng.Intn(2) == 0 {
				txType = models.SavingsWithdrawal
			}
			_, err = s.savings.RecordTransaction(userID, plan.ID, txType, amount, "")
		case 4:
			_, err = s.circles.ContributeToCircle(userID, circle.ID, amount)
		case 5:
			var inv *models.Investment
			inv, _, err = s.investments.CreateInvestment(userID, CreateInvestmentInput{
				InvestmentName: "Fund", InvestmentType: "stocks", AmountInvested: amount,
			})
			if err == nil && rng.Intn(2) == 0 {
				_, err = s.investments.LiquidateInvestment(userID, inv.ID)
			}
		}
		if err != nil &&
			!errors.Is(err, apperrors.ErrInsufficientBalance) &&
			!errors.Is(err, apperrors.ErrInsufficientPlanBalance) {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}

	testutil.AssertConserved(t, s.db, userID, models.AccountTypeMain, initialMain)
	testutil.AssertConserved(t, s.db, userID, models.AccountTypeStash, initialStash)

	for _, accountType := range types {
		if balance := testutil.GetBalance(t, s.db, userID, accountType); balance < 0 {
			t.Errorf("%s balance went negative: %d", accountType, balance)
		}
	}
}
