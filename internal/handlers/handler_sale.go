package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// saleHandler handles HTTP requests for sales and their payments.
type saleHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	saleService     portssvc.SaleSvcFacade
	movementService portssvc.MovementSvcFacade
}

func newSaleHandler(ledger portssvc.LedgerSvcFacade, sale portssvc.SaleSvcFacade, movement portssvc.MovementSvcFacade) *saleHandler {
	return &saleHandler{ledgerService: ledger, saleService: sale, movementService: movement}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, sale portssvc.SaleSvcFacade, movement portssvc.MovementSvcFacade) {
	h := newSaleHandler(ledger, sale, movement)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.registerSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
		sales.POST("/:saleID/payments", h.recordPayment)
		sales.GET("/:saleID/movements", h.listSaleMovements)
	}
}

func (h *saleHandler) registerSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	sale, err := h.ledgerService.RegisterSale(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.saleService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

func (h *saleHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	resp, err := h.ledgerService.RecordPayment(c.Request.Context(), saleID, req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *saleHandler) listSaleMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	movements, err := h.movementService.ListMovementsBySale(c.Request.Context(), saleID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list sale movements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": dto.ToMovementResponses(movements)})
}
