package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// clientHandler handles HTTP requests for the client registry.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(client portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: client}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, client portssvc.ClientSvcFacade) {
	h := newClientHandler(client)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
		clients.PUT("/:clientID", h.updateClient)
		clients.DELETE("/:clientID", h.deactivateClient)
	}
}

// parseListParams reads limit/offset query params with sane bounds.
func parseListParams(c *gin.Context) (int, int, bool) {
	limit := 25
	offset := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 || v > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 100"})
			return 0, 0, false
		}
		limit = v
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return 0, 0, false
		}
		offset = v
	}
	return limit, offset, true
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	client, err := h.clientService.CreateClient(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list clients")
		return
	}

	views := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		views = append(views, dto.ToClientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, gin.H{"clients": views})
}

func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	client, err := h.clientService.GetClient(c.Request.Context(), clientID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	client, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) deactivateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	actorID := middleware.GetActorFromContext(c)
	if err := h.clientService.DeactivateClient(c.Request.Context(), clientID, actorID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate client")
		return
	}
	c.Status(http.StatusNoContent)
}
