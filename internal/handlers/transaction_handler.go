package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/pagination"
	"finvault/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	AccountType models.AccountType `json:"account_type" binding:"omitempty,account_type"`
	Type        models.EntryType   `json:"type" binding:"required,entry_type"`
	Category    string             `json:"category" binding:"max=50"`
	Amount      models.Money       `json:"amount"`
	Description string             `json:"description" binding:"max=500"`
	Status      string             `json:"status" binding:"omitempty,transaction_status"`
}

// ListTransactionsQuery holds the filters accepted by the transaction listing.
type ListTransactionsQuery struct {
	AccountType string `form:"account_type" binding:"omitempty,account_type"`
	Category    string `form:"category"`
	Type        string `form:"type" binding:"omitempty,entry_type"`
	pagination.Window
}

// CreateTransaction handles the creation of a new transaction.
// @Summary     Create a transaction
// @Description Record a credit or debit against one of the caller's accounts
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} services.MutationResult
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.CreateTransaction(
		userID,
		req.AccountType,
		req.Type,
		req.Category,
		req.Amount,
		req.Description,
		req.Status,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", result.TransactionID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount.String(), "account_type": result.AccountType})

	c.JSON(http.StatusCreated, result)
}

// GetUserTransactions lists the caller's transactions, newest first.
// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Param       account_type query string false "Filter by account type (main, stash)"
// @Param       category     query string false "Filter by category"
// @Param       type         query string false "Filter by entry type (credit, debit)"
// @Param       limit        query int    false "Items to return (default 50, max 100)"
// @Param       offset       query int    false "Items to skip"
// @Success     200 {object} pagination.ListResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{Window: query.Window}
	if query.AccountType != "" {
		accountType := models.AccountType(query.AccountType)
		filter.AccountType = &accountType
	}
	if query.Category != "" {
		filter.Category = &query.Category
	}
	if query.Type != "" {
		entryType := models.EntryType(query.Type)
		filter.Type = &entryType
	}

	result, err := h.transactionService.ListTransactions(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID returns one of the caller's transactions.
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
