package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// attendanceHandler handles HTTP requests for the check-in/check-out protocol
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

// newAttendanceHandler creates a new attendanceHandler
func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{
		attendanceService: as,
	}
}

// registerAttendanceRoutes registers the staff-side attendance routes, nested
// under the shift they belong to.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	rg.POST("/shifts/:shift_id/geofence-check", h.checkGeofence)
	rg.POST("/shifts/:shift_id/check-in", h.checkIn)
	rg.POST("/shifts/:shift_id/check-out", h.checkOut)
}

// checkGeofence godoc
// @Summary Verify proximity to the shift location
// @Description Measures the distance between the reported position and the shift location. Within 100 metres the verification is recorded and check-in unlocks. Safe to call repeatedly.
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Param   position body dto.GeofenceCheckRequest true "Reported GPS position"
// @Success 200 {object} dto.GeofenceCheckResult
// @Failure 400 {object} map[string]string "Invalid input, or shift has no coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not the assigned staff)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to verify location"
// @Security BearerAuth
// @Router /shifts/{shift_id}/geofence-check [post]
func (h *attendanceHandler) checkGeofence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

	var req dto.GeofenceCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for checkGeofence", slog.String("error", err.Error()))
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
	logger.Info("Received geofence check")

	result, err := h.attendanceService.CheckGeofence(c.Request.Context(), shiftID, staffID, req.Lat, req.Lon)
	if err != nil {
		respondAttendanceError(c, logger, err, "verify location")
		return
	}

	logger.Info("Geofence check completed",
		slog.Bool("within_geofence", result.WithinGeofence),
		slog.Float64("distance_meters", result.Distance.Meters),
	)
	c.JSON(http.StatusOK, result)
}

// checkIn godoc
// @Summary Check in to a shift
// @Description Starts the clock for the assigned staff member. A successful geofence verification must precede check-in.
// @Tags attendance
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} map[string]string "Location not verified yet"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not the assigned staff)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Already checked in"
// @Failure 500 {object} map[string]string "Failed to check in"
// @Security BearerAuth
// @Router /shifts/{shift_id}/check-in [post]
func (h *attendanceHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("staff_id", staffID))
	logger.Info("Received check-in request")

	attendance, err := h.attendanceService.CheckIn(c.Request.Context(), shiftID, staffID)
	if err != nil {
		respondAttendanceError(c, logger, err, "check in")
		return
	}

	logger.Info("Checked in", slog.String("attendance_id", attendance.AttendanceID))
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}

// checkOut godoc
// @Summary Check out of a shift
// @Description Stops the clock, derives worked hours and pay from the stored check-in time, and submits the timesheet for review.
// @Tags attendance
// @Produce  json
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.CheckOutResult
// @Failure 400 {object} map[string]string "Not checked in"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not the assigned staff)"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Already checked out"
// @Failure 500 {object} map[string]string "Failed to check out"
// @Security BearerAuth
// @Router /shifts/{shift_id}/check-out [post]
func (h *attendanceHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shift_id")

	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		logger.Error("Staff ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("staff_id", staffID))
	logger.Info("Received check-out request")

	result, err := h.attendanceService.CheckOut(c.Request.Context(), shiftID, staffID)
	if err != nil {
		respondAttendanceError(c, logger, err, "check out")
		return
	}

	logger.Info("Checked out",
		slog.String("total_hours", result.TotalHours.String()),
		slog.String("total_pay", result.TotalPay.String()),
	)
	c.JSON(http.StatusOK, result)
}

// respondAttendanceError maps attendance service errors onto HTTP statuses.
func respondAttendanceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Shift or attendance record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		logger.Warn("Caller is not the assigned staff member")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned to this shift"})
	} else if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		logger.Warn("Attendance state conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
