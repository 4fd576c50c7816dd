package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// ledgerHandler handles the standalone capital operations: transfers,
// expenses and deposits.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledger portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledger}
}

// registerLedgerRoutes registers the capital movement routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledger)

	rg.POST("/transfers", h.transfer)
	rg.POST("/expenses", h.recordExpense)
	rg.POST("/deposits", h.recordDeposit)
}

func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	resp, err := h.ledgerService.Transfer(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to transfer")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ledgerHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	movementID, err := h.ledgerService.RecordExpense(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.MovementIDResponse{MovementID: movementID})
}

func (h *ledgerHandler) recordDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	movementID, err := h.ledgerService.RecordDeposit(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record deposit")
		return
	}
	c.JSON(http.StatusCreated, dto.MovementIDResponse{MovementID: movementID})
}
