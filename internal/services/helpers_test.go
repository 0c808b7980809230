package services

import (
	"testing"

	"gorm.io/gorm"

	"finvault/internal/models"
	"finvault/internal/testutil"
)

// testServices wires every service over one test database.
type testServices struct {
	db           *gorm.DB
	ledger       LedgerStorer
	mutator      BalanceMutator
	accounts     AccountServicer
	transactions TransactionServicer
	bills        BillServicer
	circles      CircleServicer
	savings      SavingsServicer
	investments  InvestmentServicer
	audit        AuditServicer
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	return newTestServicesOn(testutil.SetupTestDB(t))
}

func newTestServicesOn(db *gorm.DB) *testServices {
	ledger := NewLedgerStore(db)
	mutator := NewBalanceMutator(ledger)
	return &testServices{
		db:           db,
		ledger:       ledger,
		mutator:      mutator,
		accounts:     NewAccountService(db, ledger, mutator),
		transactions: NewTransactionService(db, ledger, mutator),
		bills:        NewBillService(db, mutator),
		circles:      NewCircleService(db, mutator),
		savings:      NewSavingsService(db, mutator),
		investments:  NewInvestmentService(db, ledger, mutator),
		audit:        NewAuditService(db),
	}
}

func (s *testServices) close(t *testing.T) {
	t.Helper()
	testutil.TeardownTestDB(t, s.db)
}

// newFundedUser creates a user with main and stash balances in minor units.
func (s *testServices) newFundedUser(t *testing.T, main, stash models.Money) string {
	t.Helper()
	userID := testutil.NewUserID()
	testutil.CreateTestAccounts(t, s.db, userID, main, stash)
	return userID
}

func lastTransaction(t *testing.T, db *gorm.DB, userID string) models.Transaction {
	t.Helper()
	var txn models.Transaction
	if err := db.Where("user_id = ?", userID).Order("transaction_date DESC").Order("id DESC").First(&txn).Error; err != nil {
		t.Fatalf("failed to load last transaction: %v", err)
	}
	return txn
}
