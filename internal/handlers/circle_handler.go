package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// CircleHandler handles savings circle requests.
type CircleHandler struct {
	circleService services.CircleServicer
	auditService  services.AuditServicer
}

// NewCircleHandler creates a new CircleHandler.
func NewCircleHandler(circleService services.CircleServicer, auditService services.AuditServicer) *CircleHandler {
	return &CircleHandler{circleService: circleService, auditService: auditService}
}

// CreateCircleRequest represents the request payload for creating a circle.
type CreateCircleRequest struct {
	CircleName   string       `json:"circle_name" binding:"required,max=100"`
	Description  string       `json:"description" binding:"max=500"`
	TargetAmount models.Money `json:"target_amount"`
	MaxMembers   *int         `json:"max_members" binding:"omitempty,min=1"`
	IsPublic     *bool        `json:"is_public"`
	Category     string       `json:"category" binding:"max=50"`
}

// ContributeRequest represents a contribution to a circle.
type ContributeRequest struct {
	Amount models.Money `json:"amount"`
}

// CreateCircle handles the creation of a circle; the caller becomes its first member.
// @Summary     Create a circle
// @Tags        circles
// @Accept      json
// @Produce     json
// @Param       request body CreateCircleRequest true "Circle details"
// @Success     201 {object} models.Circle
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /circles [post]
func (h *CircleHandler) CreateCircle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCircleRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	circle, err := h.circleService.CreateCircle(userID, services.CreateCircleInput{
		CircleName:   req.CircleName,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		MaxMembers:   req.MaxMembers,
		IsPublic:     req.IsPublic,
		Category:     req.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_CIRCLE", "circle", circle.ID, c.ClientIP(),
		map[string]interface{}{"circle_name": req.CircleName, "target_amount": req.TargetAmount.String()})

	c.JSON(http.StatusCreated, gin.H{"circle": circle})
}

// GetCircles lists circles.
// @Summary     List circles
// @Tags        circles
// @Produce     json
// @Param       filter query string false "all, mine or public (default all)"
// @Success     200 {object} map[string][]models.Circle
// @Router      /circles [get]
func (h *CircleHandler) GetCircles(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := models.CircleFilter(c.DefaultQuery("filter", string(models.CircleFilterAll)))
	switch filter {
	case models.CircleFilterAll, models.CircleFilterMine, models.CircleFilterPublic:
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "filter must be all, mine or public"))
		return
	}

	circles, err := h.circleService.ListCircles(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"circles": circles})
}

// GetCircleByID returns a circle with its active members.
// @Summary     Get a circle
// @Tags        circles
// @Produce     json
// @Param       id path string true "Circle ID"
// @Success     200 {object} models.Circle
// @Failure     404 {object} ErrorResponse "Circle not found"
// @Router      /circles/{id} [get]
func (h *CircleHandler) GetCircleByID(c *gin.Context) {
	circleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	circle, err := h.circleService.GetCircle(circleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"circle": circle})
}

// JoinCircle adds the caller as an active member.
// @Summary     Join a circle
// @Tags        circles
// @Produce     json
// @Param       id path string true "Circle ID"
// @Success     200 {object} models.CircleMember
// @Failure     400 {object} ErrorResponse "Inactive, full or already a member"
// @Failure     404 {object} ErrorResponse "Circle not found"
// @Router      /circles/{id}/join [post]
func (h *CircleHandler) JoinCircle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	circleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	member, err := h.circleService.JoinCircle(userID, circleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "JOIN_CIRCLE", "circle", circleID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// LeaveCircle marks the caller's membership as left.
// @Summary     Leave a circle
// @Tags        circles
// @Produce     json
// @Param       id path string true "Circle ID"
// @Success     200 {object} map[string]string
// @Failure     400 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Circle not found"
// @Router      /circles/{id}/leave [post]
func (h *CircleHandler) LeaveCircle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	circleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.circleService.LeaveCircle(userID, circleID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "LEAVE_CIRCLE", "circle", circleID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Left circle"})
}

// Contribute moves money from the caller's main account into the circle.
// @Summary     Contribute to a circle
// @Tags        circles
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Circle ID"
// @Param       request body ContributeRequest true "Amount"
// @Success     200 {object} services.ContributionResult
// @Failure     400 {object} ErrorResponse "Invalid amount, not a member or insufficient balance"
// @Failure     404 {object} ErrorResponse "Circle not found"
// @Router      /circles/{id}/contribute [post]
func (h *CircleHandler) Contribute(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	circleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContributeRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.circleService.ContributeToCircle(userID, circleID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CIRCLE_CONTRIBUTION", "circle", circleID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "transaction_id": result.TransactionID})

	c.JSON(http.StatusOK, result)
}
