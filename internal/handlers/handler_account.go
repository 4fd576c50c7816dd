package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// accountHandler handles read access to the account roster.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	movementService portssvc.MovementSvcFacade
}

func newAccountHandler(account portssvc.AccountSvcFacade, movement portssvc.MovementSvcFacade) *accountHandler {
	return &accountHandler{accountService: account, movementService: movement}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, account portssvc.AccountSvcFacade, movement portssvc.MovementSvcFacade) {
	h := newAccountHandler(account, movement)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/balance", h.getAccountBalance)
		accounts.GET("/:accountID/movements", h.listAccountMovements)
	}
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}

	views := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		views = append(views, dto.ToAccountResponse(&accounts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"accounts": views})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	balance, err := h.accountService.GetAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve account balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

func (h *accountHandler) listAccountMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.movementService.ListMovementsByAccount(c.Request.Context(), accountID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list account movements")
		return
	}
	c.JSON(http.StatusOK, resp)
}
