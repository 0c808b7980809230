package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// UpdateBalanceRequest represents the request payload for a direct balance change.
type UpdateBalanceRequest struct {
	Amount      models.Money           `json:"amount"`
	Operation   models.LedgerOperation `json:"operation" binding:"required,ledger_operation"`
	Category    string                 `json:"category" binding:"max=50"`
	Description string                 `json:"description" binding:"max=500"`
}

// TransferRequest represents the request payload for moving money between accounts.
type TransferRequest struct {
	FromAccount models.AccountType `json:"from_account" binding:"required,account_type"`
	ToAccount   models.AccountType `json:"to_account" binding:"required,account_type"`
	Amount      models.Money       `json:"amount"`
	Description string             `json:"description" binding:"max=500"`
}

// StashRequest represents the request payload for topping up or withdrawing from the stash.
type StashRequest struct {
	Amount      models.Money `json:"amount"`
	Description string       `json:"description" binding:"max=500"`
}

// GetUserAccounts returns the caller's accounts, provisioning main and stash on first access.
// @Summary     List accounts
// @Tags        accounts
// @Produce     json
// @Success     200 {object} map[string][]models.Account
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetUserAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.EnsureAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccount returns one account by type.
// @Summary     Get account
// @Tags        accounts
// @Produce     json
// @Param       type path string true "Account type (main, stash)"
// @Success     200 {object} models.Account
// @Failure     400 {object} ErrorResponse "Invalid account type"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{type} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountType := models.AccountType(c.Param("type"))
	if !accountType.IsValid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid account type"))
		return
	}

	account, err := h.accountService.GetAccount(userID, accountType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateBalance adds to or subtracts from one account and logs the entry.
// @Summary     Update account balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       type    path string               true "Account type (main, stash)"
// @Param       request body UpdateBalanceRequest true "Balance change"
// @Success     200 {object} services.MutationResult
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{type}/balance [patch]
func (h *AccountHandler) UpdateBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountType := models.AccountType(c.Param("type"))
	if !accountType.IsValid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid account type"))
		return
	}

	var req UpdateBalanceRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.accountService.UpdateBalance(userID, accountType, req.Amount, req.Operation, req.Category, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BALANCE", "account", result.AccountID, c.ClientIP(),
		map[string]interface{}{"operation": req.Operation, "amount": req.Amount.String()})

	c.JSON(http.StatusOK, result)
}

// Transfer moves money between two of the caller's accounts in one unit of work.
// @Summary     Transfer between accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body TransferRequest true "Transfer details"
// @Success     200 {object} services.TransferResult
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/transfer [post]
func (h *AccountHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	h.transfer(c, req.FromAccount, req.ToAccount, req.Amount, req.Description)
}

// TopUpStash moves money from main to stash.
// @Summary     Top up stash
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body StashRequest true "Amount"
// @Success     200 {object} services.TransferResult
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Router      /accounts/top-up [post]
func (h *AccountHandler) TopUpStash(c *gin.Context) {
	var req StashRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	h.transfer(c, models.AccountTypeMain, models.AccountTypeStash, req.Amount, req.Description)
}

// WithdrawStash moves money from stash back to main.
// @Summary     Withdraw from stash
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body StashRequest true "Amount"
// @Success     200 {object} services.TransferResult
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Router      /accounts/withdraw [post]
func (h *AccountHandler) WithdrawStash(c *gin.Context) {
	var req StashRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	h.transfer(c, models.AccountTypeStash, models.AccountTypeMain, req.Amount, req.Description)
}

func (h *AccountHandler) transfer(c *gin.Context, from, to models.AccountType, amount models.Money, description string) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.accountService.Transfer(userID, from, to, amount, description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "TRANSFER", "transaction", result.DebitTransactionID, c.ClientIP(),
		map[string]interface{}{"from": from, "to": to, "amount": amount.String()})

	c.JSON(http.StatusOK, result)
}
