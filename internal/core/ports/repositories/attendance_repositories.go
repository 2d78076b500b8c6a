package repositories

import (
	"context"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AttendanceReader defines read operations for attendance data
type AttendanceReader interface {
	// FindAttendanceByShiftID retrieves the attendance record of a shift.
	// Returns apperrors.ErrNotFound when no attendance row exists yet.
	FindAttendanceByShiftID(ctx context.Context, shiftID string) (*domain.ShiftAttendance, error)
}

// AttendanceWriter defines write operations spanning the attendance record and
// its timesheet satellite. Attendance and timesheet rows are created lazily by
// these methods; every method runs as one database transaction.
type AttendanceWriter interface {
	// RecordGeofenceVerification upserts the timesheet with the verification
	// method and ensures an attendance row exists in not_checked_in state.
	// Idempotent: re-verifying an already verified shift is a no-op.
	RecordGeofenceVerification(ctx context.Context, shiftID string, method domain.VerificationMethod, locationNote string, actingUserID string, now time.Time) error

	// RecordCheckIn transitions the attendance row to checked_in under a row
	// lock and marks the timesheet clock_in_verified. Returns
	// apperrors.ErrConflict when the row is already checked_in or checked_out.
	RecordCheckIn(ctx context.Context, shiftID string, checkInTime time.Time, actingUserID string) error

	// RecordCheckOut transitions the attendance row from checked_in to
	// checked_out under a row lock, and submits the timesheet with the derived
	// hours, rate and pay. Returns apperrors.ErrConflict when the attendance is
	// not currently checked_in.
	RecordCheckOut(ctx context.Context, shiftID string, checkOutTime time.Time, totalHours, hourlyRate, totalPay decimal.Decimal, actingUserID string) error
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
