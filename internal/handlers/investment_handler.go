package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// AddInvestmentRequest represents the request payload for adding an investment.
type AddInvestmentRequest struct {
	InvestmentName string        `json:"investment_name" binding:"required,max=100"`
	InvestmentType string        `json:"investment_type" binding:"required,max=50"`
	AmountInvested models.Money  `json:"amount_invested"`
	CurrentValue   *models.Money `json:"current_value"`
	PurchaseDate   *string       `json:"purchase_date"`
	MaturityDate   *string       `json:"maturity_date"`
	Description    string        `json:"description" binding:"max=500"`
}

// UpdateValueRequest represents the request payload for revaluing an investment.
type UpdateValueRequest struct {
	CurrentValue *models.Money `json:"current_value" binding:"required"`
}

// AddInvestment buys a position with money from the main account.
// @Summary     Add an investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body AddInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Router      /investments [post]
func (h *InvestmentHandler) AddInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddInvestmentRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	purchaseDate, err := parseOptionalDate("purchase_date", req.PurchaseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	maturityDate, err := parseOptionalDate("maturity_date", req.MaturityDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in := services.CreateInvestmentInput{
		InvestmentName: req.InvestmentName,
		InvestmentType: req.InvestmentType,
		AmountInvested: req.AmountInvested,
		CurrentValue:   req.CurrentValue,
		MaturityDate:   maturityDate,
		Description:    req.Description,
	}
	if purchaseDate != nil {
		in.PurchaseDate = *purchaseDate
	}

	investment, mutation, err := h.investmentService.CreateInvestment(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"amount_invested": req.AmountInvested.String(), "transaction_id": mutation.TransactionID})

	c.JSON(http.StatusCreated, gin.H{
		"investment":     investment,
		"new_balance":    mutation.NewBalance,
		"transaction_id": mutation.TransactionID,
	})
}

// GetPortfolio lists the caller's investments with a summary.
// @Summary     List investments
// @Tags        investments
// @Produce     json
// @Param       status query string false "Filter by status (active, sold)"
// @Success     200 {object} services.InvestmentList
// @Router      /investments [get]
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var status *models.InvestmentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.InvestmentStatus(raw)
		if s != models.InvestmentStatusActive && s != models.InvestmentStatusSold {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active or sold"))
			return
		}
		status = &s
	}

	list, err := h.investmentService.ListInvestments(userID, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateValue revalues an active investment.
// @Summary     Update investment value
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Investment ID"
// @Param       request body UpdateValueRequest true "New value"
// @Success     200 {object} models.Investment
// @Failure     400 {object} ErrorResponse "Invalid amount or already sold"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id}/value [patch]
func (h *InvestmentHandler) UpdateValue(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateValueRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.UpdateInvestmentValue(userID, investmentID, *req.CurrentValue)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INVESTMENT_VALUE", "investment", investmentID, c.ClientIP(),
		map[string]interface{}{"current_value": req.CurrentValue.String()})

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// Liquidate sells an investment and credits its value to the main account.
// @Summary     Liquidate an investment
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     200 {object} services.LiquidationResult
// @Failure     400 {object} ErrorResponse "Already sold"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id}/liquidate [post]
func (h *InvestmentHandler) Liquidate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.investmentService.LiquidateInvestment(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "LIQUIDATE_INVESTMENT", "investment", investmentID, c.ClientIP(),
		map[string]interface{}{"liquidated_amount": result.LiquidatedAmount.String()})

	c.JSON(http.StatusOK, result)
}
