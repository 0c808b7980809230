package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// SavingsHandler handles savings plan requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService}
}

// CreatePlanRequest represents the request payload for creating a savings plan.
type CreatePlanRequest struct {
	PlanName     string               `json:"plan_name" binding:"required,max=100"`
	TargetAmount models.Money         `json:"target_amount"`
	Frequency    models.PlanFrequency `json:"frequency" binding:"required,plan_frequency"`
	StartDate    *string              `json:"start_date"`
	EndDate      *string              `json:"end_date"`
	Description  string               `json:"description" binding:"max=500"`
	AutoSave     bool                 `json:"auto_save"`
}

// UpdatePlanRequest represents a partial update of a savings plan.
type UpdatePlanRequest struct {
	PlanName     *string            `json:"plan_name" binding:"omitempty,max=100"`
	TargetAmount *models.Money      `json:"target_amount"`
	Status       *models.PlanStatus `json:"status" binding:"omitempty,plan_status"`
	AutoSave     *bool              `json:"auto_save"`
}

// SavingsTransactionRequest represents a deposit into or withdrawal from a plan.
type SavingsTransactionRequest struct {
	TransactionType models.SavingsType `json:"transaction_type" binding:"required,savings_type"`
	Amount          models.Money       `json:"amount"`
	Notes           string             `json:"notes" binding:"max=500"`
}

// CreatePlan handles the creation of a savings plan.
// @Summary     Create a savings plan
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       request body CreatePlanRequest true "Plan details"
// @Success     201 {object} models.SavingsPlan
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /savings/plans [post]
func (h *SavingsHandler) CreatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	startDate, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	endDate, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in := services.CreatePlanInput{
		PlanName:     req.PlanName,
		TargetAmount: req.TargetAmount,
		Frequency:    req.Frequency,
		EndDate:      endDate,
		Description:  req.Description,
		AutoSave:     req.AutoSave,
	}
	if startDate != nil {
		in.StartDate = *startDate
	}

	plan, err := h.savingsService.CreatePlan(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SAVINGS_PLAN", "savings_plan", plan.ID, c.ClientIP(),
		map[string]interface{}{"plan_name": req.PlanName, "target_amount": req.TargetAmount.String()})

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// GetUserPlans lists the caller's savings plans with progress.
// @Summary     List savings plans
// @Tags        savings
// @Produce     json
// @Param       status query string false "Filter by status (active, completed, paused)"
// @Success     200 {object} map[string][]models.SavingsPlan
// @Router      /savings/plans [get]
func (h *SavingsHandler) GetUserPlans(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var status *models.PlanStatus
	if raw := c.Query("status"); raw != "" {
		s := models.PlanStatus(raw)
		switch s {
		case models.PlanStatusActive, models.PlanStatusCompleted, models.PlanStatusPaused:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active, completed or paused"))
			return
		}
	}

	plans, err := h.savingsService.ListPlans(userID, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// UpdatePlan renames, retargets, pauses or resumes a plan.
// @Summary     Update a savings plan
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Plan ID"
// @Param       request body UpdatePlanRequest true "Fields to change"
// @Success     200 {object} models.SavingsPlan
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /savings/plans/{id} [patch]
func (h *SavingsHandler) UpdatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.savingsService.UpdatePlan(userID, planID, services.UpdatePlanInput{
		PlanName:     req.PlanName,
		TargetAmount: req.TargetAmount,
		Status:       req.Status,
		AutoSave:     req.AutoSave,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"status": string(plan.Status)}
	if req.PlanName != nil {
		changes["plan_name"] = *req.PlanName
	}
	if req.TargetAmount != nil {
		changes["target_amount"] = req.TargetAmount.String()
	}
	if req.AutoSave != nil {
		changes["auto_save"] = *req.AutoSave
	}
	h.auditService.Log(userID, "UPDATE_SAVINGS_PLAN", "savings_plan", planID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// RecordTransaction deposits into or withdraws from a plan via the main account.
// @Summary     Deposit or withdraw
// @Tags        savings
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Plan ID"
// @Param       request body SavingsTransactionRequest true "Movement details"
// @Success     200 {object} services.SavingsResult
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /savings/plans/{id}/transactions [post]
func (h *SavingsHandler) RecordTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.savingsService.RecordTransaction(userID, planID, req.TransactionType, req.Amount, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVINGS_"+string(req.TransactionType), "savings_plan", planID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "transaction_id": result.TransactionID})

	c.JSON(http.StatusOK, result)
}
