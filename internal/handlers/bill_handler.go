package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// BillHandler handles bill-related requests.
type BillHandler struct {
	billService  services.BillServicer
	auditService services.AuditServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer, auditService services.AuditServicer) *BillHandler {
	return &BillHandler{billService: billService, auditService: auditService}
}

// CreateBillRequest represents the request payload for creating a bill.
type CreateBillRequest struct {
	BillType            string                `json:"bill_type" binding:"required,max=50"`
	BillerName          string                `json:"biller_name" binding:"required,max=100"`
	Amount              models.Money          `json:"amount"`
	DueDate             string                `json:"due_date" binding:"required"`
	IsRecurring         bool                  `json:"is_recurring"`
	RecurrenceFrequency *models.BillFrequency `json:"recurrence_frequency" binding:"omitempty,bill_frequency"`
	AccountNumber       string                `json:"account_number" binding:"max=50"`
	ReferenceNumber     string                `json:"reference_number" binding:"max=50"`
}

// CreateBill handles the creation of a new bill.
// @Summary     Create a bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} models.Bill
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBillRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	dueDate, err := parseDate("due_date", req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.CreateBill(userID, services.CreateBillInput{
		BillType:            req.BillType,
		BillerName:          req.BillerName,
		Amount:              req.Amount,
		DueDate:             dueDate,
		IsRecurring:         req.IsRecurring,
		RecurrenceFrequency: req.RecurrenceFrequency,
		AccountNumber:       req.AccountNumber,
		ReferenceNumber:     req.ReferenceNumber,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BILL", "bill", bill.ID, c.ClientIP(),
		map[string]interface{}{"biller_name": req.BillerName, "amount": req.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetUserBills lists the caller's bills by due date.
// @Summary     List bills
// @Tags        bills
// @Produce     json
// @Param       status query string false "Filter by status (pending, paid)"
// @Success     200 {object} map[string][]models.Bill
// @Router      /bills [get]
func (h *BillHandler) GetUserBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var status *models.BillStatus
	if raw := c.Query("status"); raw != "" {
		s := models.BillStatus(raw)
		if s != models.BillStatusPending && s != models.BillStatusPaid {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be pending or paid"))
			return
		}
		status = &s
	}

	bills, err := h.billService.ListBills(userID, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// GetBillByID returns one of the caller's bills.
// @Summary     Get a bill
// @Tags        bills
// @Produce     json
// @Param       id path string true "Bill ID"
// @Success     200 {object} models.Bill
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBillByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBill(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// PayBill pays a pending bill from the main account.
// @Summary     Pay a bill
// @Tags        bills
// @Produce     json
// @Param       id path string true "Bill ID"
// @Success     200 {object} services.PayBillResult
// @Failure     400 {object} ErrorResponse "Already paid or insufficient balance"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id}/pay [post]
func (h *BillHandler) PayBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.billService.PayBill(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"amount": result.AmountPaid.String(), "transaction_id": result.TransactionID}
	if result.NextBillID != nil {
		changes["next_bill_id"] = *result.NextBillID
	}
	h.auditService.Log(userID, "PAY_BILL", "bill", billID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, result)
}
