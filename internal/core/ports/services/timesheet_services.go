package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// TimesheetReaderSvc defines read operations for timesheet data
type TimesheetReaderSvc interface {
	// GetTimesheetByID retrieves a timesheet, scoped to the organization owning its shift.
	GetTimesheetByID(ctx context.Context, orgID string, timesheetID string) (*domain.ShiftTimesheet, error)

	// ListTimesheets retrieves a paginated list of the organization's timesheets.
	ListTimesheets(ctx context.Context, orgID string, params dto.ListTimesheetsParams) (*dto.ListTimesheetsResponse, error)
}

// TimesheetReviewSvc defines the review state machine operations. Every
// operation requires the acting organization to own the shift behind the
// timesheet.
type TimesheetReviewSvc interface {
	// Approve moves a timesheet to approved and triggers invoicing best-effort.
	Approve(ctx context.Context, orgID string, timesheetID string, actingUserID string, notes string) (*dto.TimesheetActionResponse, error)

	// Reject moves a timesheet to rejected (an active dispute).
	Reject(ctx context.Context, orgID string, timesheetID string, actingUserID string, notes string) (*dto.TimesheetActionResponse, error)

	// ForceApprove is the administrative override: approves regardless of the
	// current state, then triggers invoicing best-effort.
	ForceApprove(ctx context.Context, orgID string, timesheetID string, actingUserID string, notes string) (*dto.TimesheetActionResponse, error)

	// ResolveDispute moves a rejected timesheet to approved or under_review.
	ResolveDispute(ctx context.Context, orgID string, timesheetID string, actingUserID string, target domain.TimesheetStatus, notes string) (*dto.TimesheetActionResponse, error)

	// MarkStaffPaid flips the staff pay status after re-confirming the external
	// invoice is paid.
	MarkStaffPaid(ctx context.Context, orgID string, timesheetID string, actingUserID string) (*dto.TimesheetActionResponse, error)
}

// TimesheetSvcFacade combines all timesheet-related service interfaces
type TimesheetSvcFacade interface {
	TimesheetReaderSvc
	TimesheetReviewSvc
}
