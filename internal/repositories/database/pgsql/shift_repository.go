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
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shiftColumns = `shift_id, org_id, title, address, latitude, longitude, start_time, end_time, hourly_rate, status, assigned_staff_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

func scanShift(row pgx.Row) (*domain.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.OrgID,
		&m.Title,
		&m.Address,
		&m.Latitude,
		&m.Longitude,
		&m.StartTime,
		&m.EndTime,
		&m.HourlyRate,
		&m.Status,
		&m.AssignedStaffID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainShift(m)
	return &d, nil
}

// SaveShift inserts a new shift.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.OrgID,
		m.Title,
		m.Address,
		m.Latitude,
		m.Longitude,
		m.StartTime,
		m.EndTime,
		m.HourlyRate,
		m.Status,
		m.AssignedStaffID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: shift with ID %s already exists", apperrors.ErrDuplicate, m.ShiftID)
		}
		return fmt.Errorf("failed to save shift %s: %w", m.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`

	shift, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift by ID %s: %w", shiftID, err)
	}
	return shift, nil
}

// findShiftByIDForUpdate locks a shift row inside an open transaction. Used by
// the assignment transaction so two concurrent accepts serialize.
func findShiftByIDForUpdate(ctx context.Context, tx pgx.Tx, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1 FOR UPDATE;`

	shift, err := scanShift(tx.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock shift %s: %w", shiftID, err)
	}
	return shift, nil
}

// ListShiftsByOrg retrieves a paginated list of an organization's shifts,
// newest start time first, using token-based pagination.
func (r *PgxShiftRepository) ListShiftsByOrg(ctx context.Context, orgID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	args := []interface{}{orgID}
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE org_id = $1`

	if nextToken != nil && *nextToken != "" {
		startTime, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (start_time, created_at) < ($2, $3)`
		args = append(args, startTime, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY start_time DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list shifts for org %s: %w", orgID, err)
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0, limit)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, *shift)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}

	var token *string
	if len(shifts) > limit {
		shifts = shifts[:limit]
		last := shifts[len(shifts)-1]
		t := pagination.EncodeToken(last.StartTime, last.CreatedAt)
		token = &t
	}
	return shifts, token, nil
}

// UpdateShiftStatus moves a shift to a new status.
func (r *PgxShiftRepository) UpdateShiftStatus(ctx context.Context, shiftID string, status domain.ShiftStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE shifts
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE shift_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, shiftID, models.ShiftStatus(status), updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateShiftLocation sets the geocoded coordinates of a shift.
func (r *PgxShiftRepository) UpdateShiftLocation(ctx context.Context, shiftID string, location domain.Coordinates, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE shifts
		SET latitude = $2, longitude = $3, last_updated_at = $4, last_updated_by = $5
		WHERE shift_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, shiftID, location.Lat, location.Lon, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update location of shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
