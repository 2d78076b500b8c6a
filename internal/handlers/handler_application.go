package handlers

import (
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

// applicationHandler handles HTTP requests related to shift applications
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

// newApplicationHandler creates a new applicationHandler
func newApplicationHandler(as portssvc.ApplicationSvcFacade) *applicationHandler {
	return &applicationHandler{
		applicationService: as,
	}
}

// registerApplicationRoutes registers both the staff-side intake routes and
// the organization-side review routes.
func registerApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(applicationService)

	rg.POST("/shifts/:shift_id/applications", h.apply)
	rg.GET("/shifts/:shift_id/applications", h.listApplicationsForShift)

	appGroup := rg.Group("/applications")
	{
		appGroup.POST("/:application_id/cancel", h.cancelApplication)
		appGroup.POST("/:application_id/review", h.reviewApplication)
	}
}

// apply godoc
// @Summary Apply to a shift
// @Description Records the authenticated staff member's application to a published shift.
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Param   application body dto.ApplyRequest true "Application notes"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift not open, or already applied"
// @Failure 500 {object} map[string]string "Failed to apply"
// @Security BearerAuth
// @Router /shifts/{shift_id}/applications [post]
func (h *applicationHandler) apply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for apply", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("staff_id", staffID))
	logger.Info("Received shift application")

	application, err := h.applicationService.Apply(c.Request.Context(), shiftID, staffID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for application")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate application")
			c.JSON(http.StatusConflict, gin.H{"error": "You have already applied to this shift"})
		} else if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Shift not open for applications", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to apply to shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply to shift"})
		}
		return
	}

	logger.Info("Application recorded", slog.String("application_id", application.ApplicationID))
	c.JSON(http.StatusCreated, dto.ToApplicationResponse(application))
}

// listApplicationsForShift godoc
// @Summary List applications on a shift
// @Description Retrieves all applications submitted for a shift the caller's organization owns.
// @Tags applications
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (shift belongs to another organization)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to list applications"
// @Security BearerAuth
// @Router /shifts/{shift_id}/applications [get]
func (h *applicationHandler) listApplicationsForShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("org_id", orgID), slog.String("shift_id", shiftID))

	applications, err := h.applicationService.ListApplicationsForShift(c.Request.Context(), orgID, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Shift belongs to another organization")
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this shift"})
		} else {
			logger.Error("Failed to list applications", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		}
		return
	}

	logger.Info("Applications listed", slog.Int("count", len(applications)))
	c.JSON(http.StatusOK, dto.ToApplicationResponses(applications))
}

// cancelApplication godoc
// @Summary Withdraw an application
// @Description Withdraws the authenticated staff member's own pending application.
// @Tags applications
// @Produce  json
// @Param   application_id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (not the applicant)"
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 409 {object} map[string]string "Application is no longer pending"
// @Failure 500 {object} map[string]string "Failed to withdraw application"
// @Security BearerAuth
// @Router /applications/{application_id}/cancel [post]
func (h *applicationHandler) cancelApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("application_id")

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("application_id", applicationID), slog.String("staff_id", staffID))
	logger.Info("Received request to withdraw application")

	err := h.applicationService.CancelApplication(c.Request.Context(), applicationID, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Application not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Caller is not the applicant")
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only withdraw your own application"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Application no longer pending", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to withdraw application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw application"})
		}
		return
	}

	logger.Info("Application withdrawn")
	c.Status(http.StatusNoContent)
}

// reviewApplication godoc
// @Summary Review an application
// @Description Accepts or rejects a pending application. Accepting assigns the shift to the applicant and rejects every other pending application atomically.
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   application_id path string true "Application ID"
// @Param   decision body dto.ReviewApplicationRequest true "Review decision"
// @Success 200 {object} dto.ReviewApplicationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (shift belongs to another organization)"
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 409 {object} map[string]string "Shift already assigned, or application not pending"
// @Failure 500 {object} map[string]string "Failed to review application"
// @Security BearerAuth
// @Router /applications/{application_id}/review [post]
func (h *applicationHandler) reviewApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("application_id")

	var req dto.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for reviewApplication", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("org_id", orgID),
		slog.String("application_id", applicationID),
		slog.String("action", req.Action),
	)
	logger.Info("Received request to review application")

	resp, err := h.applicationService.ReviewApplication(c.Request.Context(), orgID, applicationID, userID, domain.ReviewAction(req.Action), req.Notes)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Application not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Shift belongs to another organization")
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this application"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Review conflict", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error reviewing application", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to review application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review application"})
		}
		return
	}

	logger.Info("Application reviewed", slog.String("status", resp.Application.Status))
	c.JSON(http.StatusOK, resp)
}
