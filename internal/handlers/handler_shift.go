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

// shiftHandler handles HTTP requests related to shifts
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

// newShiftHandler creates a new shiftHandler
func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{
		shiftService: ss,
	}
}

// registerShiftRoutes registers the organization-side shift lifecycle routes
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shiftGroup := rg.Group("/shifts")
	{
		shiftGroup.POST("", h.createShift)
		shiftGroup.GET("", h.listShifts)
		shiftGroup.GET("/:shift_id", h.getShift)
		shiftGroup.POST("/:shift_id/publish", h.publishShift)
		shiftGroup.POST("/:shift_id/cancel", h.cancelShift)
	}
}

// createShift godoc
// @Summary Create a new shift
// @Description Creates a shift in draft status for the caller's organization. When coordinates are omitted the address is geocoded best-effort.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.CreateShiftRequest true "Shift details"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create shift"
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) createShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createShift", slog.String("error", err.Error()))
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

	logger = logger.With(slog.String("org_id", orgID), slog.String("user_id", userID))
	logger.Info("Received request to create shift", slog.String("title", req.Title))

	newShift, err := h.shiftService.CreateShift(c.Request.Context(), orgID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating shift", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create shift in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shift"})
		}
		return
	}

	logger.Info("Shift created successfully", slog.String("shift_id", newShift.ShiftID))
	c.JSON(http.StatusCreated, dto.ToShiftResponse(newShift))
}

// listShifts godoc
// @Summary List shifts for the organization
// @Description Retrieves a paginated list of the caller organization's shifts, newest first.
// @Tags shifts
// @Produce  json
// @Param   limit query int false "Max results per page (1-100)" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for listShifts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.shiftService.ListShifts(c.Request.Context(), orgID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list shifts from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		}
		return
	}

	logger.Info("Shifts listed successfully", slog.Int("count", len(resp.Shifts)))
	c.JSON(http.StatusOK, resp)
}

// getShift godoc
// @Summary Get shift by ID
// @Description Retrieves a single shift owned by the caller's organization.
// @Tags shifts
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (shift belongs to another organization)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to get shift"
// @Security BearerAuth
// @Router /shifts/{shift_id} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

	orgID, ok := middleware.GetOrgIDFromContext(c)
	if !ok {
		logger.Error("Org ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("org_id", orgID), slog.String("shift_id", shiftID))

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), orgID, shiftID)
	if err != nil {
		respondShiftError(c, logger, err, "get shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// publishShift godoc
// @Summary Publish a draft shift
// @Description Opens a draft shift for staff applications.
// @Tags shifts
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (shift belongs to another organization)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is not in draft status"
// @Failure 500 {object} map[string]string "Failed to publish shift"
// @Security BearerAuth
// @Router /shifts/{shift_id}/publish [post]
func (h *shiftHandler) publishShift(c *gin.Context) {
	h.transitionShift(c, "publish", h.shiftService.PublishShift)
}

// cancelShift godoc
// @Summary Cancel a shift
// @Description Cancels a draft or published shift. Assigned shifts cannot be cancelled.
// @Tags shifts
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (shift belongs to another organization)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift cannot be cancelled from its current status"
// @Failure 500 {object} map[string]string "Failed to cancel shift"
// @Security BearerAuth
// @Router /shifts/{shift_id}/cancel [post]
func (h *shiftHandler) cancelShift(c *gin.Context) {
	h.transitionShift(c, "cancel", h.shiftService.CancelShift)
}

type shiftTransitionFunc func(ctx context.Context, orgID, shiftID, actingUserID string) (*domain.Shift, error)

// transitionShift handles the shared plumbing for publish and cancel.
func (h *shiftHandler) transitionShift(c *gin.Context, action string, fn shiftTransitionFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

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
		slog.String("shift_id", shiftID),
		slog.String("user_id", userID),
	)
	logger.Info("Received request to " + action + " shift")

	shift, err := fn(c.Request.Context(), orgID, shiftID, userID)
	if err != nil {
		respondShiftError(c, logger, err, action+" shift")
		return
	}

	logger.Info("Shift "+action+" succeeded", slog.String("status", string(shift.Status)))
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// respondShiftError maps service errors for shift operations onto HTTP statuses.
func respondShiftError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Shift not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		logger.Warn("Shift belongs to another organization")
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this shift"})
	} else if errors.Is(err, apperrors.ErrConflict) {
		logger.Warn("Illegal shift status transition", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
