package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// purchaseOrderHandler handles HTTP requests for purchase orders.
type purchaseOrderHandler struct {
	ledgerService      portssvc.LedgerSvcFacade
	distributorService portssvc.DistributorSvcFacade
}

func newPurchaseOrderHandler(ledger portssvc.LedgerSvcFacade, distributor portssvc.DistributorSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{ledgerService: ledger, distributorService: distributor}
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, distributor portssvc.DistributorSvcFacade) {
	h := newPurchaseOrderHandler(ledger, distributor)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.registerPurchaseOrder)
		orders.GET("/:purchaseOrderID", h.getPurchaseOrder)
	}
}

func (h *purchaseOrderHandler) registerPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPurchaseOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	order, err := h.ledgerService.RegisterPurchaseOrder(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register purchase order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseOrderID := c.Param("purchaseOrderID")

	order, err := h.distributorService.GetPurchaseOrder(c.Request.Context(), purchaseOrderID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}
