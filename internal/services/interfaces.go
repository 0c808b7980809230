package services

import (
	"time"

	"gorm.io/gorm"

	"finvault/internal/models"
	"finvault/internal/pagination"
)

// LedgerEntry is one row to append to the transaction log.
type LedgerEntry struct {
	UserID      string
	AccountID   string
	Type        models.EntryType
	Category    string
	Amount      models.Money
	Description string
	Status      string
}

// TransactionFilter narrows a transaction listing. Each set field adds one
// parameterised condition.
type TransactionFilter struct {
	AccountType *models.AccountType
	Category    *string
	Type        *models.EntryType
	pagination.Window
}

// LedgerStorer owns accounts and the transaction log. It is the only
// component that writes Account.Balance.
type LedgerStorer interface {
	EnsureAccounts(userID string) ([]models.Account, error)
	GetAccount(userID string, accountType models.AccountType) (*models.Account, error)
	GetUserAccounts(userID string) ([]models.Account, error)
	GetAccountForUpdate(tx *gorm.DB, userID string, accountType models.AccountType) (*models.Account, error)
	SetBalance(tx *gorm.DB, accountID string, newBalance models.Money) error
	AppendTransaction(tx *gorm.DB, entry LedgerEntry) (*models.Transaction, error)
	ListTransactions(userID string, filter TransactionFilter) (*pagination.ListResponse[models.Transaction], error)
	GetTransaction(userID, transactionID string) (*models.Transaction, error)
}

// MutationRequest describes a single balance change.
type MutationRequest struct {
	UserID      string
	AccountType models.AccountType
	Amount      models.Money
	Operation   models.LedgerOperation
	Category    string
	Description string
	Status      string
}

// MutationResult is the outcome of a committed-or-pending balance change.
type MutationResult struct {
	AccountID     string       `json:"account_id"`
	AccountType   string       `json:"account_type"`
	NewBalance    models.Money `json:"new_balance"`
	TransactionID string       `json:"transaction_id"`
}

// BalanceMutator is the single read-modify-write-and-log primitive. It runs
// inside the caller's unit of work and never commits.
type BalanceMutator interface {
	Mutate(tx *gorm.DB, req MutationRequest) (*MutationResult, error)
}

// TransferResult reports both legs of an account-to-account move.
type TransferResult struct {
	FromBalance         models.Money `json:"from_balance"`
	ToBalance           models.Money `json:"to_balance"`
	DebitTransactionID  string       `json:"debit_transaction_id"`
	CreditTransactionID string       `json:"credit_transaction_id"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	EnsureAccounts(userID string) ([]models.Account, error)
	GetUserAccounts(userID string) ([]models.Account, error)
	GetAccount(userID string, accountType models.AccountType) (*models.Account, error)
	UpdateBalance(userID string, accountType models.AccountType, amount models.Money, op models.LedgerOperation, category, description string) (*MutationResult, error)
	Transfer(userID string, from, to models.AccountType, amount models.Money, description string) (*TransferResult, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, accountType models.AccountType, entryType models.EntryType, category string, amount models.Money, description, status string) (*MutationResult, error)
	ListTransactions(userID string, filter TransactionFilter) (*pagination.ListResponse[models.Transaction], error)
	GetTransaction(userID, transactionID string) (*models.Transaction, error)
}

// CreateBillInput holds the fields of a new bill.
type CreateBillInput struct {
	BillType            string
	BillerName          string
	Amount              models.Money
	DueDate             time.Time
	IsRecurring         bool
	RecurrenceFrequency *models.BillFrequency
	AccountNumber       string
	ReferenceNumber     string
}

// PayBillResult is returned by a successful bill payment.
type PayBillResult struct {
	BillID        string       `json:"bill_id"`
	NewBalance    models.Money `json:"new_balance"`
	AmountPaid    models.Money `json:"amount_paid"`
	TransactionID string       `json:"transaction_id"`
	NextBillID    *string      `json:"next_bill_id,omitempty"`
}

// BillServicer defines the contract for bill-related business logic.
type BillServicer interface {
	CreateBill(userID string, in CreateBillInput) (*models.Bill, error)
	ListBills(userID string, status *models.BillStatus) ([]models.Bill, error)
	GetBill(userID, billID string) (*models.Bill, error)
	PayBill(userID, billID string) (*PayBillResult, error)
}

// CreatePlanInput holds the fields of a new savings plan.
type CreatePlanInput struct {
	PlanName     string
	TargetAmount models.Money
	Frequency    models.PlanFrequency
	StartDate    time.Time
	EndDate      *time.Time
	Description  string
	AutoSave     bool
}

// UpdatePlanInput is a partial update of a savings plan; nil fields are left unchanged.
// Status accepts active or paused; completed is derived from the amounts.
type UpdatePlanInput struct {
	PlanName     *string
	TargetAmount *models.Money
	Status       *models.PlanStatus
	AutoSave     *bool
}

// SavingsResult is returned by a deposit or withdrawal.
type SavingsResult struct {
	NewPlanAmount        models.Money      `json:"new_plan_amount"`
	NewAccountBalance    models.Money      `json:"new_account_balance"`
	PlanStatus           models.PlanStatus `json:"plan_status"`
	TransactionID        string            `json:"transaction_id"`
	SavingsTransactionID string            `json:"savings_transaction_id"`
}

// SavingsServicer defines the contract for savings plan business logic.
type SavingsServicer interface {
	CreatePlan(userID string, in CreatePlanInput) (*models.SavingsPlan, error)
	ListPlans(userID string, status *models.PlanStatus) ([]models.SavingsPlan, error)
	UpdatePlan(userID, planID string, in UpdatePlanInput) (*models.SavingsPlan, error)
	RecordTransaction(userID, planID string, txType models.SavingsType, amount models.Money, notes string) (*SavingsResult, error)
}

// CreateCircleInput holds the fields of a new circle.
type CreateCircleInput struct {
	CircleName   string
	Description  string
	TargetAmount models.Money
	MaxMembers   *int
	IsPublic     *bool
	Category     string
}

// ContributionResult is returned by a circle contribution.
type ContributionResult struct {
	NewContribution models.Money        `json:"new_contribution"`
	NewCircleAmount models.Money        `json:"new_circle_amount"`
	NewBalance      models.Money        `json:"new_balance"`
	CircleStatus    models.CircleStatus `json:"circle_status"`
	TransactionID   string              `json:"transaction_id"`
}

// CircleServicer defines the contract for circle business logic.
type CircleServicer interface {
	CreateCircle(userID string, in CreateCircleInput) (*models.Circle, error)
	ListCircles(userID string, filter models.CircleFilter) ([]models.Circle, error)
	GetCircle(circleID string) (*models.Circle, error)
	JoinCircle(userID, circleID string) (*models.CircleMember, error)
	LeaveCircle(userID, circleID string) error
	ContributeToCircle(userID, circleID string, amount models.Money) (*ContributionResult, error)
}

// CreateInvestmentInput holds the fields of a new investment.
type CreateInvestmentInput struct {
	InvestmentName string
	InvestmentType string
	AmountInvested models.Money
	CurrentValue   *models.Money
	PurchaseDate   time.Time
	MaturityDate   *time.Time
	Description    string
}

// LiquidationResult is returned when an investment is sold.
type LiquidationResult struct {
	LiquidatedAmount models.Money `json:"liquidated_amount"`
	NewBalance       models.Money `json:"new_balance"`
	TransactionID    *string      `json:"transaction_id,omitempty"`
}

// PortfolioSummary aggregates a listing of investments.
type PortfolioSummary struct {
	TotalInvested         models.Money `json:"total_invested"`
	TotalCurrentValue     models.Money `json:"total_current_value"`
	TotalReturnPercentage float64      `json:"total_return_percentage"`
}

// InvestmentList is a listing plus its summary.
type InvestmentList struct {
	Investments []models.Investment `json:"investments"`
	Summary     PortfolioSummary    `json:"summary"`
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	CreateInvestment(userID string, in CreateInvestmentInput) (*models.Investment, *MutationResult, error)
	ListInvestments(userID string, status *models.InvestmentStatus) (*InvestmentList, error)
	UpdateInvestmentValue(userID, investmentID string, currentValue models.Money) (*models.Investment, error)
	LiquidateInvestment(userID, investmentID string) (*LiquidationResult, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
