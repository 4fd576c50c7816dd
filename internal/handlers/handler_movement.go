package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// movementHandler handles read access to the movement log and reversals.
type movementHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(ledger portssvc.LedgerSvcFacade, movement portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{ledgerService: ledger, movementService: movement}
}

// registerMovementRoutes registers routes related to the movement log.
func registerMovementRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade, movement portssvc.MovementSvcFacade) {
	h := newMovementHandler(ledger, movement)

	movements := rg.Group("/movements")
	{
		movements.GET("/recent", h.listRecentMovements)
		movements.GET("/summary", h.summarizeMovements)
		movements.GET("/:movementID", h.getMovement)
		movements.POST("/:movementID/reversal", h.reverseMovement)
	}
}

func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	movement, err := h.movementService.GetMovement(c.Request.Context(), movementID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

func (h *movementHandler) listRecentMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.MovementFilter{
		AccountID:     c.Query("accountId"),
		ClientID:      c.Query("clientId"),
		DistributorID: c.Query("distributorId"),
		Search:        c.Query("search"),
	}
	if kind := c.Query("kind"); kind != "" {
		filter.Kind = domain.MovementKind(kind)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 100"})
			return
		}
		filter.Limit = limit
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": dto.ToMovementResponses(movements)})
}

func (h *movementHandler) summarizeMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.movementService.SummarizeMovements(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarize movements")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *movementHandler) reverseMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	var req dto.ReverseMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReverseMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	reversalID, err := h.ledgerService.ReverseMovement(c.Request.Context(), movementID, req.Reason, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse movement")
		return
	}
	c.JSON(http.StatusCreated, dto.MovementIDResponse{MovementID: reversalID})
}
