package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// AttendanceSvcFacade governs the geofence-gated check-in/check-out protocol.
// All three operations require the caller to be the staff member assigned to
// the shift.
type AttendanceSvcFacade interface {
	// CheckGeofence verifies the worker's proximity to the shift location.
	// Within 100m it records the verification and unlocks check-in. Idempotent;
	// clients poll it while waiting for GPS accuracy.
	CheckGeofence(ctx context.Context, shiftID string, staffID string, lat, lon float64) (*dto.GeofenceCheckResult, error)

	// CheckIn transitions attendance to checked_in. Requires a prior geofence
	// verification.
	CheckIn(ctx context.Context, shiftID string, staffID string) (*domain.ShiftAttendance, error)

	// CheckOut transitions attendance to checked_out, derives worked hours and
	// pay from the stored check-in time, and submits the timesheet.
	CheckOut(ctx context.Context, shiftID string, staffID string) (*dto.CheckOutResult, error)
}
