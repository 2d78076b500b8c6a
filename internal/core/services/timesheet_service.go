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
)

// TimesheetService handles the timesheet review state machine. Approval and
// invoicing are deliberately decoupled: an approval always commits, and a
// failed invoice handoff surfaces as a warning for the reconciliation sweep
// to retry.
type TimesheetService struct {
	timesheetRepo portsrepo.TimesheetRepositoryFacade
	shiftRepo     portsrepo.ShiftRepositoryFacade
	invoicing     portssvc.InvoicingSvcFacade
	notifier      portssvc.NotificationDispatcher
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(timesheetRepo portsrepo.TimesheetRepositoryFacade, shiftRepo portsrepo.ShiftRepositoryFacade, invoicing portssvc.InvoicingSvcFacade, notifier portssvc.NotificationDispatcher) portssvc.TimesheetSvcFacade {
	return &TimesheetService{
		timesheetRepo: timesheetRepo,
		shiftRepo:     shiftRepo,
		invoicing:     invoicing,
		notifier:      notifier,
	}
}

// Ensure TimesheetService implements the portssvc.TimesheetSvcFacade interface
var _ portssvc.TimesheetSvcFacade = (*TimesheetService)(nil)

// GetTimesheetByID retrieves a timesheet, scoped to the organization owning its shift.
func (s *TimesheetService) GetTimesheetByID(ctx context.Context, orgID string, timesheetID string) (*domain.ShiftTimesheet, error) {
	timesheet, _, err := s.ownedTimesheet(ctx, orgID, timesheetID)
	return timesheet, err
}

// ListTimesheets retrieves a paginated list of the organization's timesheets.
func (s *TimesheetService) ListTimesheets(ctx context.Context, orgID string, params dto.ListTimesheetsParams) (*dto.ListTimesheetsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var status *domain.TimesheetStatus
	if params.Status != nil && *params.Status != "" {
		st := domain.TimesheetStatus(*params.Status)
		status = &st
	}

	sheets, nextToken, err := s.timesheetRepo.ListTimesheetsByOrg(ctx, orgID, status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return &dto.ListTimesheetsResponse{
		Timesheets: dto.ToTimesheetResponses(sheets),
		NextToken:  nextToken,
	}, nil
}

// Approve moves a submitted or under-review timesheet to approved and then
// triggers invoicing best-effort.
func (s *TimesheetService) Approve(ctx context.Context, orgID string, timesheetID string, actingUserID string, notes string) (*dto.TimesheetActionResponse, error) {
	return s.review(ctx, orgID, timesheetID, actingUserID, notes, domain.TimesheetApproved, func(ts *domain.ShiftTimesheet) error {
		if ts.Status != domain.TimesheetSubmitted && ts.Status != domain.TimesheetUnderReview {
			return fmt.Errorf("%w: only submitted or under-review timesheets can be approved, current status is %s", apperrors.ErrValidation, ts.Status)
		}
		return nil
	})
}

// Reject moves a submitted or under-review timesheet to rejected, opening a dispute.
func (s *TimesheetService) Reject(ctx context.Context, orgID string, timesheetID string, actingUserID string, notes string) (*dto.TimesheetActionResponse, error) {
	return s.review(ctx, orgID, timesheetID, actingUserID, notes, domain.TimesheetRejected, func(ts *domain.ShiftTimesheet) error {
		if ts.Status != domain.TimesheetSubmitted && ts.Status != domain.TimesheetUnderReview {
			return fmt.Errorf("%w: only submitted or under-review timesheets can be rejected, current status is %s", apperrors.ErrValidation, ts.Status)
		}
		return nil
	})
}

// ForceApprove is the administrative override: it approves from any
// non-terminal state, then triggers invoicing best-effort.
func (s *TimesheetService) ForceApprove(ctx context.Context, orgID string, timesheetID string, actingUserID string, notes string) (*dto.TimesheetActionResponse, error) {
	return s.review(ctx, orgID, timesheetID, actingUserID, notes, domain.TimesheetApproved, func(ts *domain.ShiftTimesheet) error {
		if ts.Status == domain.TimesheetPaid {
			return fmt.Errorf("%w: paid timesheets cannot be re-approved", apperrors.ErrValidation)
		}
		return nil
	})
}

// ResolveDispute moves a rejected timesheet to approved or under_review.
func (s *TimesheetService) ResolveDispute(ctx context.Context, orgID string, timesheetID string, actingUserID string, target domain.TimesheetStatus, notes string) (*dto.TimesheetActionResponse, error) {
	if target != domain.TimesheetApproved && target != domain.TimesheetUnderReview {
		return nil, fmt.Errorf("%w: disputes resolve to approved or under_review, not %s", apperrors.ErrValidation, target)
	}
	return s.review(ctx, orgID, timesheetID, actingUserID, notes, target, func(ts *domain.ShiftTimesheet) error {
		if ts.Status != domain.TimesheetRejected {
			return fmt.Errorf("%w: only rejected timesheets have a dispute to resolve, current status is %s", apperrors.ErrValidation, ts.Status)
		}
		return nil
	})
}

// MarkStaffPaid flips the staff pay status after re-confirming the external
// invoice is settled.
func (s *TimesheetService) MarkStaffPaid(ctx context.Context, orgID string, timesheetID string, actingUserID string) (*dto.TimesheetActionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	timesheet, _, err := s.ownedTimesheet(ctx, orgID, timesheetID)
	if err != nil {
		return nil, err
	}

	if timesheet.StaffPayStatus == domain.PayPaid {
		return &dto.TimesheetActionResponse{
			Success:   true,
			Message:   "Staff member already marked paid",
			Timesheet: dto.ToTimesheetResponse(timesheet),
		}, nil
	}

	if timesheet.Status != domain.TimesheetPaid {
		if !timesheet.IsInvoiced() {
			return nil, fmt.Errorf("%w: timesheet has no settled invoice, staff cannot be paid out", apperrors.ErrValidation)
		}
		timesheet, err = s.invoicing.SyncInvoiceStatus(ctx, timesheetID)
		if err != nil {
			return nil, err
		}
		if timesheet.Status != domain.TimesheetPaid {
			return nil, fmt.Errorf("%w: invoice is not settled yet, staff cannot be paid out", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	if err := s.timesheetRepo.MarkStaffPaid(ctx, timesheetID, now, actingUserID); err != nil {
		logger.Error("Failed to mark staff paid", slog.String("timesheet_id", timesheetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to mark staff paid: %w", err)
	}

	timesheet, err = s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload timesheet: %w", err)
	}

	logger.Info("Staff marked paid", slog.String("timesheet_id", timesheetID))
	return &dto.TimesheetActionResponse{
		Success:   true,
		Message:   "Staff member marked paid",
		Timesheet: dto.ToTimesheetResponse(timesheet),
	}, nil
}

// review applies a guarded review transition and, when the new state is
// approved, runs the invoicing hook.
func (s *TimesheetService) review(ctx context.Context, orgID, timesheetID, actingUserID, notes string, target domain.TimesheetStatus, guard func(*domain.ShiftTimesheet) error) (*dto.TimesheetActionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	timesheet, shift, err := s.ownedTimesheet(ctx, orgID, timesheetID)
	if err != nil {
		return nil, err
	}
	if err := guard(timesheet); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.timesheetRepo.UpdateTimesheetReview(ctx, timesheetID, target, notes, actingUserID, now); err != nil {
		logger.Error("Failed to update timesheet review", slog.String("timesheet_id", timesheetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update timesheet: %w", err)
	}

	timesheet, err = s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload timesheet: %w", err)
	}

	logger.Info("Timesheet review recorded",
		slog.String("timesheet_id", timesheetID), slog.String("status", string(target)))

	resp := &dto.TimesheetActionResponse{
		Success:   true,
		Message:   fmt.Sprintf("Timesheet %s", target),
		Timesheet: dto.ToTimesheetResponse(timesheet),
	}

	if target == domain.TimesheetApproved {
		resp.Invoice, resp.Warning = s.onApproved(ctx, timesheet)
		if shift.AssignedStaffID != nil {
			s.notifyBestEffort(ctx, *shift.AssignedStaffID, "Your timesheet has been approved", timesheetID)
		}
	}
	return resp, nil
}

// onApproved is the single invoicing hook behind every path into approved.
// The approval itself has already committed; an accounting outage degrades to
// a warning and the reconciliation sweep retries later.
func (s *TimesheetService) onApproved(ctx context.Context, timesheet *domain.ShiftTimesheet) (*dto.InvoiceRefResponse, string) {
	invoice, err := s.invoicing.CreateInvoiceForTimesheet(ctx, timesheet.TimesheetID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Invoicing deferred after approval",
			slog.String("timesheet_id", timesheet.TimesheetID), slog.String("error", err.Error()))
		return nil, "Timesheet approved but invoicing is currently unavailable, it will be retried automatically"
	}
	return invoice, ""
}

// ownedTimesheet loads a timesheet and the shift behind it, verifying the
// organization owns that shift.
func (s *TimesheetService) ownedTimesheet(ctx context.Context, orgID, timesheetID string) (*domain.ShiftTimesheet, *domain.Shift, error) {
	timesheet, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load timesheet: %w", err)
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, timesheet.ShiftID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load shift behind timesheet: %w", err)
	}
	if shift.OrgID != orgID {
		return nil, nil, fmt.Errorf("%w: timesheet belongs to a different organization", apperrors.ErrForbidden)
	}
	return timesheet, shift, nil
}

func (s *TimesheetService) notifyBestEffort(ctx context.Context, staffID, text, entityRef string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, staffID, text, entityRef); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Notification delivery failed",
			slog.String("staff_id", staffID), slog.String("error", err.Error()))
	}
}
