package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portsrepo "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/repositories"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/middleware"
	"github.com/shopspring/decimal"
)

// AttendanceService governs the geofence-gated check-in/check-out protocol.
type AttendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	timesheetRepo  portsrepo.TimesheetRepositoryFacade
	shiftRepo      portsrepo.ShiftRepositoryFacade
	geodistance    portssvc.GeodistanceSvcFacade
	notifier       portssvc.NotificationDispatcher
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	timesheetRepo portsrepo.TimesheetRepositoryFacade,
	shiftRepo portsrepo.ShiftRepositoryFacade,
	geodistance portssvc.GeodistanceSvcFacade,
	notifier portssvc.NotificationDispatcher,
) portssvc.AttendanceSvcFacade {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		timesheetRepo:  timesheetRepo,
		shiftRepo:      shiftRepo,
		geodistance:    geodistance,
		notifier:       notifier,
	}
}

// Ensure AttendanceService implements the portssvc.AttendanceSvcFacade interface
var _ portssvc.AttendanceSvcFacade = (*AttendanceService)(nil)

// CheckGeofence verifies the worker's proximity to the shift location and,
// within the radius, records the verification that unlocks check-in.
// Idempotent, so clients may poll while waiting for GPS accuracy to improve.
func (s *AttendanceService) CheckGeofence(ctx context.Context, shiftID string, staffID string, lat, lon float64) (*dto.GeofenceCheckResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	shift, err := s.assignedShift(ctx, shiftID, staffID)
	if err != nil {
		return nil, err
	}
	if shift.Location == nil {
		return nil, fmt.Errorf("%w: shift has no coordinates, location cannot be verified", apperrors.ErrValidation)
	}

	worker := domain.Coordinates{Lat: lat, Lon: lon}
	distance := s.geodistance.Distance(ctx, &worker, shift.Location)
	result := &dto.GeofenceCheckResult{Distance: dto.ToDistanceResponse(distance)}

	if !distance.Valid || distance.Meters > domain.GeofenceRadiusMeters {
		result.Message = fmt.Sprintf("You are %.0fm from the shift location, move within %.0fm to check in", distance.Meters, domain.GeofenceRadiusMeters)
		return result, nil
	}

	now := time.Now()
	locationNote := fmt.Sprintf("Verified %.0fm from shift location", distance.Meters)
	if err := s.attendanceRepo.RecordGeofenceVerification(ctx, shiftID, domain.VerificationGeofence, locationNote, staffID, now); err != nil {
		logger.Error("Failed to record geofence verification", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record geofence verification: %w", err)
	}

	logger.Info("Geofence verification passed", slog.String("shift_id", shiftID), slog.Float64("meters", distance.Meters))
	s.notifyBestEffort(ctx, staffID, "Location verified, you can now check in", shiftID)

	result.WithinGeofence = true
	result.CheckInAllowed = true
	result.Message = "Location verified, check-in unlocked"
	return result, nil
}

// CheckIn transitions attendance to checked_in. The timesheet must carry a
// geofence verification first.
func (s *AttendanceService) CheckIn(ctx context.Context, shiftID string, staffID string) (*domain.ShiftAttendance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.assignedShift(ctx, shiftID, staffID); err != nil {
		return nil, err
	}

	timesheet, err := s.timesheetRepo.FindTimesheetByShiftID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: location must be verified before check-in", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to load timesheet: %w", err)
	}
	if timesheet.VerificationMethod != domain.VerificationGeofence {
		return nil, fmt.Errorf("%w: location must be verified before check-in", apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.attendanceRepo.RecordCheckIn(ctx, shiftID, now, staffID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: already checked in", apperrors.ErrConflict)
		}
		logger.Error("Failed to record check-in", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check in: %w", err)
	}

	attendance, err := s.attendanceRepo.FindAttendanceByShiftID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload attendance after check-in: %w", err)
	}
	logger.Info("Checked in", slog.String("shift_id", shiftID), slog.String("staff_id", staffID))
	return attendance, nil
}

// CheckOut transitions attendance to checked_out, derives worked hours and
// pay once from the stored check-in time, submits the timesheet and completes
// the shift.
func (s *AttendanceService) CheckOut(ctx context.Context, shiftID string, staffID string) (*dto.CheckOutResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	shift, err := s.assignedShift(ctx, shiftID, staffID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.attendanceRepo.FindAttendanceByShiftID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: not checked in", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	if attendance.Status == domain.CheckedOut {
		return nil, fmt.Errorf("%w: already checked out", apperrors.ErrConflict)
	}
	if attendance.Status != domain.CheckedIn || attendance.CheckInTime == nil {
		return nil, fmt.Errorf("%w: must be checked in before checking out", apperrors.ErrValidation)
	}

	now := time.Now()
	totalHours := decimal.NewFromFloat(now.Sub(*attendance.CheckInTime).Hours()).Round(2)
	if totalHours.IsNegative() {
		totalHours = decimal.Zero
	}
	totalPay := totalHours.Mul(shift.HourlyRate).Round(2)

	if err := s.attendanceRepo.RecordCheckOut(ctx, shiftID, now, totalHours, shift.HourlyRate, totalPay, staffID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: already checked out", apperrors.ErrConflict)
		}
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		logger.Error("Failed to record check-out", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	if err := s.shiftRepo.UpdateShiftStatus(ctx, shiftID, domain.ShiftCompleted, staffID, now); err != nil {
		// The check-out itself is committed; completion is recoverable.
		logger.Error("Failed to mark shift completed after check-out", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
	}

	attendance, err = s.attendanceRepo.FindAttendanceByShiftID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload attendance after check-out: %w", err)
	}
	timesheet, err := s.timesheetRepo.FindTimesheetByShiftID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload timesheet after check-out: %w", err)
	}

	logger.Info("Checked out",
		slog.String("shift_id", shiftID),
		slog.String("total_hours", totalHours.String()),
		slog.String("total_pay", totalPay.String()))

	return &dto.CheckOutResult{
		Success:    true,
		Message:    "Checked out, timesheet submitted for review",
		Attendance: dto.ToAttendanceResponse(attendance),
		TotalHours: totalHours,
		TotalPay:   totalPay,
		Timesheet:  dto.ToTimesheetResponse(timesheet),
	}, nil
}

// assignedShift loads a shift and verifies the caller is its assigned staff member.
func (s *AttendanceService) assignedShift(ctx context.Context, shiftID, staffID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	if shift.AssignedStaffID == nil || *shift.AssignedStaffID != staffID {
		return nil, fmt.Errorf("%w: shift is not assigned to this staff member", apperrors.ErrForbidden)
	}
	return shift, nil
}

func (s *AttendanceService) notifyBestEffort(ctx context.Context, staffID, text, entityRef string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, staffID, text, entityRef); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Notification delivery failed",
			slog.String("staff_id", staffID), slog.String("error", err.Error()))
	}
}
