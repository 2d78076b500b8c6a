package repositories

import (
	"context"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
)

// TimesheetReader defines read operations for timesheet data
type TimesheetReader interface {
	// FindTimesheetByID retrieves a specific timesheet by its unique identifier.
	FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.ShiftTimesheet, error)

	// FindTimesheetByShiftID retrieves the timesheet of a shift, if one exists.
	FindTimesheetByShiftID(ctx context.Context, shiftID string) (*domain.ShiftTimesheet, error)

	// ListTimesheetsByOrg retrieves a paginated list of timesheets for shifts
	// owned by an organization, optionally filtered by status.
	ListTimesheetsByOrg(ctx context.Context, orgID string, status *domain.TimesheetStatus, limit int, nextToken *string) ([]domain.ShiftTimesheet, *string, error)

	// ListTimesheetsForInvoiceSync retrieves approved timesheets that still need
	// invoicing work: either no invoice reference yet, or an invoice whose
	// external status is not terminal. Feeds the reconciliation sweep.
	ListTimesheetsForInvoiceSync(ctx context.Context, limit int) ([]domain.ShiftTimesheet, error)
}

// TimesheetWriter defines write operations for timesheet data
type TimesheetWriter interface {
	// UpdateTimesheetReview records a review decision on a timesheet.
	UpdateTimesheetReview(ctx context.Context, timesheetID string, status domain.TimesheetStatus, notes string, approvedBy string, reviewedAt time.Time) error

	// UpdateTimesheetInvoice records the external invoice reference and status
	// returned by the accounting system.
	UpdateTimesheetInvoice(ctx context.Context, timesheetID string, invoiceID, invoiceNumber, xeroStatus string, updatedByUserID string, updatedAt time.Time) error

	// MarkTimesheetPaid transitions the timesheet to paid, recording when the
	// external invoice was confirmed settled.
	MarkTimesheetPaid(ctx context.Context, timesheetID string, xeroStatus string, paidAt time.Time, updatedByUserID string) error

	// MarkStaffPaid flips the staff pay status to paid and stamps staff_paid_at.
	MarkStaffPaid(ctx context.Context, timesheetID string, staffPaidAt time.Time, updatedByUserID string) error
}

// TimesheetRepositoryFacade combines all timesheet-related repository interfaces
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
}
