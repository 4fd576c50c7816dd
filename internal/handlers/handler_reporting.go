package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/middleware"
)

// reportingHandler serves the dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reporting portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reporting}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reporting portssvc.ReportingSvcFacade) {
	reports := rg.Group("/reports")
	h := newReportingHandler(reporting)
	reports.GET("/overview", h.financialOverview)
}

func (h *reportingHandler) financialOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.reportingService.FinancialOverview(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to build financial overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
