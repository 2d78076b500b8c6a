package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to fulfilment reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to fulfilment reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/fulfilment", h.getFulfilmentReport)
	}
}

// getFulfilmentReport godoc
// @Summary Generate the shift fulfilment report
// @Description Returns fill rate and average time-to-fill figures for the caller's organization.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FulfilmentReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/fulfilment [get]
func (h *reportingHandler) getFulfilmentReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("org_id", orgID))
	logger.Info("Received request to generate fulfilment report")

	report, err := h.reportingService.GetFulfilmentReport(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No shift data for organization")
			c.JSON(http.StatusNotFound, gin.H{"error": "No shift data found"})
		} else {
			logger.Error("Failed to generate fulfilment report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate fulfilment report"})
		}
		return
	}

	logger.Info("Fulfilment report generated successfully",
		slog.Int("total_shifts", report.TotalShifts),
		slog.Float64("fill_rate", report.FillRate),
	)
	c.JSON(http.StatusOK, report)
}
