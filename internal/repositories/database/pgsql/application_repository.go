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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `application_id, shift_id, staff_id, status, notes, reviewed_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxApplicationRepository struct {
	BaseRepository
}

// newPgxApplicationRepository creates a new repository for shift application data.
func newPgxApplicationRepository(pool *pgxpool.Pool) portsrepo.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxApplicationRepository implements portsrepo.ApplicationRepositoryFacade
var _ portsrepo.ApplicationRepositoryFacade = (*PgxApplicationRepository)(nil)

func scanApplication(row pgx.Row) (*domain.ShiftApplication, error) {
	var m models.ShiftApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.ShiftID,
		&m.StaffID,
		&m.Status,
		&m.Notes,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainShiftApplication(m)
	return &d, nil
}

// SaveApplication inserts a new application. The composite unique constraint on
// (shift_id, staff_id) turns a repeat application into ErrDuplicate.
func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, application domain.ShiftApplication) error {
	m := mapping.ToModelShiftApplication(application)

	query := `
		INSERT INTO shift_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ApplicationID,
		m.ShiftID,
		m.StaffID,
		m.Status,
		m.Notes,
		m.ReviewedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: staff %s already applied to shift %s", apperrors.ErrDuplicate, m.StaffID, m.ShiftID)
		}
		return fmt.Errorf("failed to save application %s: %w", m.ApplicationID, err)
	}
	return nil
}

// FindApplicationByID retrieves an application by its ID.
func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.ShiftApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM shift_applications WHERE application_id = $1;`

	app, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", applicationID, err)
	}
	return app, nil
}

// FindApplicationByShiftAndStaff retrieves the application a staff member made for a shift.
func (r *PgxApplicationRepository) FindApplicationByShiftAndStaff(ctx context.Context, shiftID, staffID string) (*domain.ShiftApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM shift_applications WHERE shift_id = $1 AND staff_id = $2;`

	app, err := scanApplication(r.Pool.QueryRow(ctx, query, shiftID, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application for shift %s staff %s: %w", shiftID, staffID, err)
	}
	return app, nil
}

// ListApplicationsByShift retrieves all applications for a shift, newest first.
func (r *PgxApplicationRepository) ListApplicationsByShift(ctx context.Context, shiftID string) ([]domain.ShiftApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM shift_applications WHERE shift_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	apps := make([]domain.ShiftApplication, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate application rows: %w", err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves a single application to a new status, stamping reviewed_at.
func (r *PgxApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, notes string, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE shift_applications
		SET status = $2, notes = $3, reviewed_at = $4, last_updated_at = $4, last_updated_by = $5
		WHERE application_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, applicationID, models.ApplicationStatus(status), notes, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of application %s: %w", applicationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AcceptApplicationTx executes the exactly-once assignment transaction.
// The shift row is locked first, then the application row; all state guards are
// re-checked under the locks so two concurrent accepts serialize instead of
// interleaving. Either every effect commits or none does.
func (r *PgxApplicationRepository) AcceptApplicationTx(ctx context.Context, applicationID string, rejectionNote string, actingUserID string, now time.Time) (*domain.ShiftApplication, error) {
	var accepted *domain.ShiftApplication

	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		// Lock the application row.
		appQuery := `SELECT ` + applicationColumns + ` FROM shift_applications WHERE application_id = $1 FOR UPDATE;`
		app, err := scanApplication(tx.QueryRow(ctx, appQuery, applicationID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to lock application %s: %w", applicationID, err)
		}

		// Lock the shift row: this is the serialization point for competing accepts.
		shift, err := findShiftByIDForUpdate(ctx, tx, app.ShiftID)
		if err != nil {
			return err
		}

		// Idempotent re-accept: the previous accept already committed.
		if app.Status == domain.ApplicationAccepted &&
			shift.AssignedStaffID != nil && *shift.AssignedStaffID == app.StaffID {
			accepted = app
			return nil
		}

		if app.Status != domain.ApplicationPending {
			return fmt.Errorf("%w: application is %s, expected pending", apperrors.ErrValidation, app.Status)
		}
		if shift.AssignedStaffID != nil && *shift.AssignedStaffID != app.StaffID {
			return fmt.Errorf("%w: shift %s is already assigned to another staff member", apperrors.ErrConflict, shift.ShiftID)
		}
		if shift.AssignedStaffID == nil && shift.Status != domain.ShiftPublished {
			return fmt.Errorf("%w: shift is %s, expected published", apperrors.ErrValidation, shift.Status)
		}

		// 1. Accept the target application.
		_, err = tx.Exec(ctx, `
			UPDATE shift_applications
			SET status = $2, reviewed_at = $3, last_updated_at = $3, last_updated_by = $4
			WHERE application_id = $1;
		`, app.ApplicationID, models.ApplicationAccepted, now, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to accept application %s: %w", app.ApplicationID, err)
		}

		// 2. Assign the shift to the applicant.
		_, err = tx.Exec(ctx, `
			UPDATE shifts
			SET status = $2, assigned_staff_id = $3, last_updated_at = $4, last_updated_by = $5
			WHERE shift_id = $1;
		`, shift.ShiftID, models.ShiftAssigned, app.StaffID, now, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to assign shift %s: %w", shift.ShiftID, err)
		}

		// 3. Foreclose every other pending application on the shift.
		_, err = tx.Exec(ctx, `
			UPDATE shift_applications
			SET status = $3, notes = $4, reviewed_at = $5, last_updated_at = $5, last_updated_by = $6
			WHERE shift_id = $1 AND application_id <> $2 AND status = $7;
		`, shift.ShiftID, app.ApplicationID, models.ApplicationRejected, rejectionNote, now, actingUserID, models.ApplicationPending)
		if err != nil {
			return fmt.Errorf("failed to reject competing applications on shift %s: %w", shift.ShiftID, err)
		}

		reviewedAt := now
		app.Status = domain.ApplicationAccepted
		app.ReviewedAt = &reviewedAt
		app.LastUpdatedAt = now
		app.LastUpdatedBy = actingUserID
		accepted = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}
