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
	"github.com/jackc/pgx/v5/pgxpool"
)

const timesheetColumns = `timesheet_id, shift_id, verification_method, clock_in_verified, clock_out_verified, total_hours, hourly_rate, total_pay, status, notes, submitted_at, reviewed_at, approved_by, xero_invoice_id, xero_invoice_number, xero_status, staff_pay_status, staff_paid_at, paid_at, created_at, created_by, last_updated_at, last_updated_by`

// terminal external invoice statuses: no further sync needed.
const xeroTerminalStatuses = `('PAID', 'VOIDED', 'DELETED')`

type PgxTimesheetRepository struct {
	BaseRepository
}

// newPgxTimesheetRepository creates a new repository for timesheet data.
func newPgxTimesheetRepository(pool *pgxpool.Pool) portsrepo.TimesheetRepositoryFacade {
	return &PgxTimesheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTimesheetRepository implements portsrepo.TimesheetRepositoryFacade
var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

func scanTimesheet(row pgx.Row) (*domain.ShiftTimesheet, error) {
	var m models.ShiftTimesheet
	err := row.Scan(
		&m.TimesheetID,
		&m.ShiftID,
		&m.VerificationMethod,
		&m.ClockInVerified,
		&m.ClockOutVerified,
		&m.TotalHours,
		&m.HourlyRate,
		&m.TotalPay,
		&m.Status,
		&m.Notes,
		&m.SubmittedAt,
		&m.ReviewedAt,
		&m.ApprovedBy,
		&m.XeroInvoiceID,
		&m.XeroInvoiceNumber,
		&m.XeroStatus,
		&m.StaffPayStatus,
		&m.StaffPaidAt,
		&m.PaidAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainShiftTimesheet(m)
	return &d, nil
}

// FindTimesheetByID retrieves a timesheet by its ID.
func (r *PgxTimesheetRepository) FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.ShiftTimesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM shift_timesheets WHERE timesheet_id = $1;`

	ts, err := scanTimesheet(r.Pool.QueryRow(ctx, query, timesheetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet by ID %s: %w", timesheetID, err)
	}
	return ts, nil
}

// FindTimesheetByShiftID retrieves the timesheet of a shift.
func (r *PgxTimesheetRepository) FindTimesheetByShiftID(ctx context.Context, shiftID string) (*domain.ShiftTimesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM shift_timesheets WHERE shift_id = $1;`

	ts, err := scanTimesheet(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet for shift %s: %w", shiftID, err)
	}
	return ts, nil
}

// ListTimesheetsByOrg retrieves a paginated list of timesheets for shifts owned
// by an organization, newest first, optionally filtered by status.
func (r *PgxTimesheetRepository) ListTimesheetsByOrg(ctx context.Context, orgID string, status *domain.TimesheetStatus, limit int, nextToken *string) ([]domain.ShiftTimesheet, *string, error) {
	query := `
		SELECT ` + prefixColumns("t", timesheetColumns) + `
		FROM shift_timesheets t
		JOIN shifts s ON s.shift_id = t.shift_id
		WHERE s.org_id = $1`
	args := []interface{}{orgID}

	if status != nil {
		args = append(args, models.TimesheetStatus(*status))
		query += fmt.Sprintf(` AND t.status = $%d`, len(args))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt)
		query += fmt.Sprintf(` AND t.created_at < $%d`, len(args))
	}
	query += fmt.Sprintf(` ORDER BY t.created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list timesheets for org %s: %w", orgID, err)
	}
	defer rows.Close()

	sheets := make([]domain.ShiftTimesheet, 0, limit)
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		sheets = append(sheets, *ts)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate timesheet rows: %w", err)
	}

	var token *string
	if len(sheets) > limit {
		sheets = sheets[:limit]
		t := pagination.EncodeDateBasedToken(sheets[len(sheets)-1].CreatedAt)
		token = &t
	}
	return sheets, token, nil
}

// ListTimesheetsForInvoiceSync retrieves approved timesheets that still need
// invoicing work: no invoice reference yet, or a non-terminal invoice status.
func (r *PgxTimesheetRepository) ListTimesheetsForInvoiceSync(ctx context.Context, limit int) ([]domain.ShiftTimesheet, error) {
	query := `
		SELECT ` + timesheetColumns + `
		FROM shift_timesheets
		WHERE status = $1
		  AND (xero_invoice_id IS NULL OR xero_status IS NULL OR xero_status NOT IN ` + xeroTerminalStatuses + `)
		ORDER BY reviewed_at ASC NULLS FIRST
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, models.TimesheetApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets for invoice sync: %w", err)
	}
	defer rows.Close()

	sheets := make([]domain.ShiftTimesheet, 0)
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		sheets = append(sheets, *ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet rows: %w", err)
	}
	return sheets, nil
}

// UpdateTimesheetReview records a review decision on a timesheet.
func (r *PgxTimesheetRepository) UpdateTimesheetReview(ctx context.Context, timesheetID string, status domain.TimesheetStatus, notes string, approvedBy string, reviewedAt time.Time) error {
	query := `
		UPDATE shift_timesheets
		SET status = $2, notes = $3, approved_by = $4, reviewed_at = $5, last_updated_at = $5, last_updated_by = $4
		WHERE timesheet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, timesheetID, models.TimesheetStatus(status), notes, approvedBy, reviewedAt)
	if err != nil {
		return fmt.Errorf("failed to update review of timesheet %s: %w", timesheetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTimesheetInvoice records the external invoice reference and status.
func (r *PgxTimesheetRepository) UpdateTimesheetInvoice(ctx context.Context, timesheetID string, invoiceID, invoiceNumber, xeroStatus string, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE shift_timesheets
		SET xero_invoice_id = $2, xero_invoice_number = $3, xero_status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE timesheet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, timesheetID, invoiceID, invoiceNumber, xeroStatus, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to record invoice on timesheet %s: %w", timesheetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkTimesheetPaid transitions the timesheet to paid once the external
// invoice is confirmed settled.
func (r *PgxTimesheetRepository) MarkTimesheetPaid(ctx context.Context, timesheetID string, xeroStatus string, paidAt time.Time, updatedByUserID string) error {
	query := `
		UPDATE shift_timesheets
		SET status = $2, xero_status = $3, paid_at = $4, last_updated_at = $4, last_updated_by = $5
		WHERE timesheet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, timesheetID, models.TimesheetPaid, xeroStatus, paidAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark timesheet %s paid: %w", timesheetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkStaffPaid flips the staff pay status to paid.
func (r *PgxTimesheetRepository) MarkStaffPaid(ctx context.Context, timesheetID string, staffPaidAt time.Time, updatedByUserID string) error {
	query := `
		UPDATE shift_timesheets
		SET staff_pay_status = $2, staff_paid_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE timesheet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, timesheetID, models.PayPaid, staffPaidAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark staff paid on timesheet %s: %w", timesheetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
