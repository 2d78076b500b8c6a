package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// timesheetHandler handles HTTP requests related to timesheets
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

// newTimesheetHandler creates a new timesheetHandler
func newTimesheetHandler(ts portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{
		timesheetService: ts,
	}
}

// registerTimesheetRoutes registers the organization-side timesheet review routes
func registerTimesheetRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade) {
	h := newTimesheetHandler(timesheetService)

	tsGroup := rg.Group("/timesheets")
	{
		tsGroup.GET("", h.listTimesheets)
		tsGroup.GET("/:timesheet_id", h.getTimesheet)
		tsGroup.POST("/:timesheet_id/approve", h.approveTimesheet)
		tsGroup.POST("/:timesheet_id/reject", h.rejectTimesheet)
		tsGroup.POST("/:timesheet_id/force-approve", h.forceApproveTimesheet)
		tsGroup.POST("/:timesheet_id/resolve-dispute", h.resolveDispute)
		tsGroup.POST("/:timesheet_id/mark-staff-paid", h.markStaffPaid)
	}
}

// listTimesheets godoc
// @Summary List timesheets for the organization
// @Description Retrieves a paginated list of the organization's timesheets, optionally filtered by review status.
// @Tags timesheets
// @Produce  json
// @Param   status query string false "Filter by status" Enums(pending_submission, submitted, under_review, approved, rejected, paid)
// @Param   limit query int false "Max results per page (1-100)" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListTimesheetsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list timesheets"
// @Security BearerAuth
// @Router /timesheets [get]
func (h *timesheetHandler) listTimesheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListTimesheetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for listTimesheets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.timesheetService.ListTimesheets(c.Request.Context(), orgID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list timesheets from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list timesheets"})
		}
		return
	}

	logger.Info("Timesheets listed successfully", slog.Int("count", len(resp.Timesheets)))
	c.JSON(http.StatusOK, resp)
}

// getTimesheet godoc
// @Summary Get timesheet by ID
// @Description Retrieves a single timesheet whose shift the caller's organization owns.
// @Tags timesheets
// @Produce  json
// @Param   timesheet_id path string true "Timesheet ID"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (timesheet belongs to another organization)"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Failure 500 {object} map[string]string "Failed to get timesheet"
// @Security BearerAuth
// @Router /timesheets/{timesheet_id} [get]
func (h *timesheetHandler) getTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("timesheet_id")

	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("org_id", orgID), slog.String("timesheet_id", timesheetID))

	timesheet, err := h.timesheetService.GetTimesheetByID(c.Request.Context(), orgID, timesheetID)
	if err != nil {
		respondTimesheetError(c, logger, err, "get timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimesheetResponse(timesheet))
}

// approveTimesheet godoc
// @Summary Approve a timesheet
// @Description Approves a submitted or under-review timesheet and triggers invoice creation. An accounting outage does not fail the approval; the response carries a warning and the invoice is retried automatically.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   timesheet_id path string true "Timesheet ID"
// @Param   review body dto.ReviewTimesheetRequest true "Reviewer notes"
// @Success 200 {object} dto.TimesheetActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (timesheet belongs to another organization)"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Failure 409 {object} map[string]string "Timesheet is not awaiting review"
// @Failure 500 {object} map[string]string "Failed to approve timesheet"
// @Security BearerAuth
// @Router /timesheets/{timesheet_id}/approve [post]
func (h *timesheetHandler) approveTimesheet(c *gin.Context) {
	h.reviewTimesheet(c, "approve", h.timesheetService.Approve)
}

// rejectTimesheet godoc
// @Summary Reject a timesheet
// @Description Rejects a submitted or under-review timesheet, opening a dispute.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   timesheet_id path string true "Timesheet ID"
// @Param   review body dto.ReviewTimesheetRequest true "Reviewer notes"
// @Success 200 {object} dto.TimesheetActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (timesheet belongs to another organization)"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Failure 409 {object} map[string]string "Timesheet is not awaiting review"
// @Failure 500 {object} map[string]string "Failed to reject timesheet"
// @Security BearerAuth
// @Router /timesheets/{timesheet_id}/reject [post]
func (h *timesheetHandler) rejectTimesheet(c *gin.Context) {
	h.reviewTimesheet(c, "reject", h.timesheetService.Reject)
}

// forceApproveTimesheet godoc
// @Summary Force-approve a timesheet
// @Description Administrative override that approves a timesheet regardless of its current state, except when already paid.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   timesheet_id path string true "Timesheet ID"
// @Param   review body dto.ReviewTimesheetRequest true "Reviewer notes"
// @Success 200 {object} dto.TimesheetActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (timesheet belongs to another organization)"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Failure 409 {object} map[string]string "Timesheet already paid"
// @Failure 500 {object} map[string]string "Failed to force-approve timesheet"
// @Security BearerAuth
// @Router /timesheets/{timesheet_id}/force-approve [post]
func (h *timesheetHandler) forceApproveTimesheet(c *gin.Context) {
	h.reviewTimesheet(c, "force-approve", h.timesheetService.ForceApprove)
}

// resolveDispute godoc
// @Summary Resolve a timesheet dispute
// @Description Moves a rejected timesheet to approved or back to under_review. Approving triggers invoice creation best-effort.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   timesheet_id path string true "Timesheet ID"
// @Param   resolution body dto.ResolveDisputeRequest true "Target status and notes"
// @Success 200 {object} dto.TimesheetActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (timesheet belongs to another organization)"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Failure 409 {object} map[string]string "Timesheet is not in dispute"
// @Failure 500 {object} map[string]string "Failed to resolve dispute"
// @Security BearerAuth
// @Router /timesheets/{timesheet_id}/resolve-dispute [post]
func (h *timesheetHandler) resolveDispute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("timesheet_id")

	var req dto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for resolveDispute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userID, orgID, ok := timesheetCallerIDs(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("org_id", orgID),
		slog.String("timesheet_id", timesheetID),
		slog.String("target_status", req.TargetStatus),
	)
	logger.Info("Received request to resolve timesheet dispute")

	resp, err := h.timesheetService.ResolveDispute(c.Request.Context(), orgID, timesheetID, userID, domain.TimesheetStatus(req.TargetStatus), req.Notes)
	if err != nil {
		respondTimesheetError(c, logger, err, "resolve dispute")
		return
	}

	logger.Info("Dispute resolved", slog.String("status", resp.Timesheet.Status))
	c.JSON(http.StatusOK, resp)
}

// markStaffPaid godoc
// @Summary Mark the staff member as paid
// @Description Records that the staff member behind a timesheet has been paid out. Requires the external invoice to be settled; the invoice status is refreshed first when needed.
// @Tags timesheets
// @Produce  json
// @Param   timesheet_id path string true "Timesheet ID"
// @Success 200 {object} dto.TimesheetActionResponse
// @Failure 400 {object} map[string]string "Invoice not yet settled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (timesheet belongs to another organization)"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Failure 500 {object} map[string]string "Failed to mark staff paid"
// @Security BearerAuth
// @Router /timesheets/{timesheet_id}/mark-staff-paid [post]
func (h *timesheetHandler) markStaffPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("timesheet_id")

	userID, orgID, ok := timesheetCallerIDs(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("org_id", orgID), slog.String("timesheet_id", timesheetID))
	logger.Info("Received request to mark staff paid")

	resp, err := h.timesheetService.MarkStaffPaid(c.Request.Context(), orgID, timesheetID, userID)
	if err != nil {
		respondTimesheetError(c, logger, err, "mark staff paid")
		return
	}

	logger.Info("Staff marked paid", slog.String("staff_pay_status", resp.Timesheet.StaffPayStatus))
	c.JSON(http.StatusOK, resp)
}

type timesheetReviewFunc func(ctx context.Context, orgID, timesheetID, actingUserID, notes string) (*dto.TimesheetActionResponse, error)

// reviewTimesheet handles the shared plumbing for approve, reject and force-approve.
func (h *timesheetHandler) reviewTimesheet(c *gin.Context, action string, fn timesheetReviewFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("timesheet_id")

	var req dto.ReviewTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userID, orgID, ok := timesheetCallerIDs(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("org_id", orgID),
		slog.String("timesheet_id", timesheetID),
		slog.String("user_id", userID),
	)
	logger.Info("Received request to " + action + " timesheet")

	resp, err := fn(c.Request.Context(), orgID, timesheetID, userID, req.Notes)
	if err != nil {
		respondTimesheetError(c, logger, err, action+" timesheet")
		return
	}

	if resp.Warning != "" {
		logger.Warn("Timesheet "+action+" completed with warning", slog.String("warning", resp.Warning))
	} else {
		logger.Info("Timesheet "+action+" succeeded", slog.String("status", resp.Timesheet.Status))
	}
	c.JSON(http.StatusOK, resp)
}

// timesheetCallerIDs extracts the acting user and organization from the request
// context, writing the 401 response itself when either is missing.
func timesheetCallerIDs(c *gin.Context, logger *slog.Logger) (userID, orgID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	orgID, ok = middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return userID, orgID, true
}

// respondTimesheetError maps timesheet service errors onto HTTP statuses.
func respondTimesheetError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Timesheet not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Timesheet not found"})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		logger.Warn("Timesheet belongs to another organization")
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this timesheet"})
	} else if errors.Is(err, apperrors.ErrConflict) {
		logger.Warn("Illegal timesheet status transition", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrUnavailable) {
		logger.Warn("Accounting system unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Accounting system is currently unavailable, please retry"})
	} else {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
