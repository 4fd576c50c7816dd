package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// distributorHandler handles HTTP requests for the distributor registry and
// debt payments.
type distributorHandler struct {
	ledgerService      portssvc.LedgerSvcFacade
	distributorService portssvc.DistributorSvcFacade
}

func newDistributorHandler(ledger portssvc.LedgerSvcFacade, distributor portssvc.DistributorSvcFacade) *distributorHandler {
	return &distributorHandler{ledgerService: ledger, distributorService: distributor}
}

// registerDistributorRoutes registers routes related to distributors.
func registerDistributorRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, distributor portssvc.DistributorSvcFacade) {
	h := newDistributorHandler(ledger, distributor)

	distributors := rg.Group("/distributors")
	{
		distributors.POST("", h.createDistributor)
		distributors.GET("", h.listDistributors)
		distributors.GET("/:distributorID", h.getDistributor)
		distributors.PUT("/:distributorID", h.updateDistributor)
		distributors.DELETE("/:distributorID", h.deactivateDistributor)
		distributors.POST("/:distributorID/payments", h.payDistributor)
		distributors.GET("/:distributorID/purchase-orders", h.listPurchaseOrders)
	}
}

func (h *distributorHandler) createDistributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDistributor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	distributor, err := h.distributorService.CreateDistributor(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create distributor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDistributorResponse(distributor))
}

func (h *distributorHandler) listDistributors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	distributors, err := h.distributorService.ListDistributors(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list distributors")
		return
	}

	views := make([]dto.DistributorResponse, 0, len(distributors))
	for i := range distributors {
		views = append(views, dto.ToDistributorResponse(&distributors[i]))
	}
	c.JSON(http.StatusOK, gin.H{"distributors": views})
}

func (h *distributorHandler) getDistributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	distributorID := c.Param("distributorID")

	distributor, err := h.distributorService.GetDistributor(c.Request.Context(), distributorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve distributor")
		return
	}
	c.JSON(http.StatusOK, dto.ToDistributorResponse(distributor))
}

func (h *distributorHandler) updateDistributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	distributorID := c.Param("distributorID")

	var req dto.UpdateDistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDistributor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	distributor, err := h.distributorService.UpdateDistributor(c.Request.Context(), distributorID, req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update distributor")
		return
	}
	c.JSON(http.StatusOK, dto.ToDistributorResponse(distributor))
}

func (h *distributorHandler) deactivateDistributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	distributorID := c.Param("distributorID")

	actorID := middleware.GetActorFromContext(c)
	if err := h.distributorService.DeactivateDistributor(c.Request.Context(), distributorID, actorID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate distributor")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *distributorHandler) payDistributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	distributorID := c.Param("distributorID")

	var req dto.PayDistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayDistributor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	if err := h.ledgerService.PayDistributor(c.Request.Context(), distributorID, req, actorID); err != nil {
		respondWithError(c, logger, err, "Failed to pay distributor")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *distributorHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	distributorID := c.Param("distributorID")
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	orders, err := h.distributorService.ListPurchaseOrders(c.Request.Context(), distributorID, limit, offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list purchase orders")
		return
	}

	views := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		views = append(views, dto.ToPurchaseOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"purchaseOrders": views})
}
