package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portsrepo "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/repositories"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/models"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const attendanceColumns = `attendance_id, shift_id, status, check_in_time, check_out_time, location_check, created_at, created_by, last_updated_at, last_updated_by`

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance and its
// timesheet satellite. Both rows are created lazily by the geofence check.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAttendanceRepository implements portsrepo.AttendanceRepositoryFacade
var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

func scanAttendance(row pgx.Row) (*domain.ShiftAttendance, error) {
	var m models.ShiftAttendance
	err := row.Scan(
		&m.AttendanceID,
		&m.ShiftID,
		&m.Status,
		&m.CheckInTime,
		&m.CheckOutTime,
		&m.LocationCheck,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainShiftAttendance(m)
	return &d, nil
}

// FindAttendanceByShiftID retrieves the attendance record of a shift.
func (r *PgxAttendanceRepository) FindAttendanceByShiftID(ctx context.Context, shiftID string) (*domain.ShiftAttendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM shift_attendances WHERE shift_id = $1;`

	att, err := scanAttendance(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance for shift %s: %w", shiftID, err)
	}
	return att, nil
}

// RecordGeofenceVerification upserts the timesheet verification marker and
// ensures an attendance row exists. clock_in_verified is deliberately left
// untouched: it is confirmed later, at check-in. Idempotent.
func (r *PgxAttendanceRepository) RecordGeofenceVerification(ctx context.Context, shiftID string, method domain.VerificationMethod, locationNote string, actingUserID string, now time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift_timesheets (timesheet_id, shift_id, verification_method, status, staff_pay_status, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $6, $7)
			ON CONFLICT (shift_id) DO UPDATE
			SET verification_method = EXCLUDED.verification_method,
			    last_updated_at = EXCLUDED.last_updated_at,
			    last_updated_by = EXCLUDED.last_updated_by
			WHERE shift_timesheets.verification_method = '';
		`, uuid.NewString(), shiftID, string(method), models.TimesheetPendingSubmission, models.PayUnpaid, now, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to upsert timesheet verification for shift %s: %w", shiftID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO shift_attendances (attendance_id, shift_id, status, location_check, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $5, $6)
			ON CONFLICT (shift_id) DO NOTHING;
		`, uuid.NewString(), shiftID, models.NotCheckedIn, locationNote, now, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to upsert attendance for shift %s: %w", shiftID, err)
		}
		return nil
	})
}

// RecordCheckIn transitions the attendance row to checked_in under a row lock
// and marks the timesheet clock_in_verified.
func (r *PgxAttendanceRepository) RecordCheckIn(ctx context.Context, shiftID string, checkInTime time.Time, actingUserID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		att, err := lockAttendance(ctx, tx, shiftID)
		if err != nil {
			return err
		}
		if att.Status != domain.NotCheckedIn {
			return fmt.Errorf("%w: attendance is already %s", apperrors.ErrConflict, att.Status)
		}

		_, err = tx.Exec(ctx, `
			UPDATE shift_attendances
			SET status = $2, check_in_time = $3, last_updated_at = $3, last_updated_by = $4
			WHERE shift_id = $1;
		`, shiftID, models.CheckedIn, checkInTime, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to record check-in for shift %s: %w", shiftID, err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE shift_timesheets
			SET clock_in_verified = TRUE, last_updated_at = $2, last_updated_by = $3
			WHERE shift_id = $1;
		`, shiftID, checkInTime, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to mark clock-in verified for shift %s: %w", shiftID, err)
		}
		return nil
	})
}

// RecordCheckOut transitions the attendance row from checked_in to checked_out
// and submits the timesheet with the derived billable quantities.
func (r *PgxAttendanceRepository) RecordCheckOut(ctx context.Context, shiftID string, checkOutTime time.Time, totalHours, hourlyRate, totalPay decimal.Decimal, actingUserID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		att, err := lockAttendance(ctx, tx, shiftID)
		if err != nil {
			return err
		}
		if att.Status == domain.CheckedOut {
			return fmt.Errorf("%w: attendance is already checked_out", apperrors.ErrConflict)
		}
		if att.Status != domain.CheckedIn {
			return fmt.Errorf("%w: attendance is %s, expected checked_in", apperrors.ErrValidation, att.Status)
		}

		_, err = tx.Exec(ctx, `
			UPDATE shift_attendances
			SET status = $2, check_out_time = $3, last_updated_at = $3, last_updated_by = $4
			WHERE shift_id = $1;
		`, shiftID, models.CheckedOut, checkOutTime, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to record check-out for shift %s: %w", shiftID, err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE shift_timesheets
			SET status = $2, clock_out_verified = TRUE, total_hours = $3, hourly_rate = $4, total_pay = $5,
			    submitted_at = $6, last_updated_at = $6, last_updated_by = $7
			WHERE shift_id = $1;
		`, shiftID, models.TimesheetSubmitted, totalHours, hourlyRate, totalPay, checkOutTime, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to submit timesheet for shift %s: %w", shiftID, err)
		}
		return nil
	})
}

func lockAttendance(ctx context.Context, tx pgx.Tx, shiftID string) (*domain.ShiftAttendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM shift_attendances WHERE shift_id = $1 FOR UPDATE;`

	att, err := scanAttendance(tx.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock attendance for shift %s: %w", shiftID, err)
	}
	return att, nil
}
