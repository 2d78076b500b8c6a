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

// systemActorID stamps audit fields for mutations made by background jobs.
const systemActorID = "system"

// invoicePaidStatus is the external status meaning the invoice is fully settled.
const invoicePaidStatus = "PAID"

// reconcileBatchSize bounds how many timesheets one sweep touches.
const reconcileBatchSize = 50

// InvoicingService is the handoff boundary to the external accounting system.
type InvoicingService struct {
	timesheetRepo portsrepo.TimesheetRepositoryFacade
	shiftRepo     portsrepo.ShiftRepositoryFacade
	accounting    portssvc.AccountingProvider
	contactRef    string
	invoiceDueIn  time.Duration
}

// NewInvoicingService creates a new InvoicingService. contactRef is the
// accounting contact invoices are raised against.
func NewInvoicingService(timesheetRepo portsrepo.TimesheetRepositoryFacade, shiftRepo portsrepo.ShiftRepositoryFacade, accounting portssvc.AccountingProvider, contactRef string, invoiceDueIn time.Duration) portssvc.InvoicingSvcFacade {
	if invoiceDueIn <= 0 {
		invoiceDueIn = 14 * 24 * time.Hour
	}
	return &InvoicingService{
		timesheetRepo: timesheetRepo,
		shiftRepo:     shiftRepo,
		accounting:    accounting,
		contactRef:    contactRef,
		invoiceDueIn:  invoiceDueIn,
	}
}

// Ensure InvoicingService implements the portssvc.InvoicingSvcFacade interface
var _ portssvc.InvoicingSvcFacade = (*InvoicingService)(nil)

// CreateInvoiceForTimesheet requests invoice creation for an approved
// timesheet. Idempotent: an already-invoiced timesheet returns the existing
// reference. No timesheet state is mutated when the accounting call fails.
func (s *InvoicingService) CreateInvoiceForTimesheet(ctx context.Context, timesheetID string) (*dto.InvoiceRefResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	timesheet, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load timesheet: %w", err)
	}

	if timesheet.IsInvoiced() {
		resp := &dto.InvoiceRefResponse{InvoiceID: *timesheet.XeroInvoiceID}
		if timesheet.XeroInvoiceNumber != nil {
			resp.InvoiceNumber = *timesheet.XeroInvoiceNumber
		}
		if timesheet.XeroStatus != nil {
			resp.Status = *timesheet.XeroStatus
		}
		return resp, nil
	}

	if timesheet.Status != domain.TimesheetApproved && timesheet.Status != domain.TimesheetPaid {
		return nil, fmt.Errorf("%w: only approved timesheets can be invoiced, current status is %s", apperrors.ErrValidation, timesheet.Status)
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, timesheet.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift for invoicing: %w", err)
	}

	line := portssvc.InvoiceLineItem{
		Description: fmt.Sprintf("%s, %s (%s hours)", shift.Title, shift.StartTime.Format("2006-01-02"), timesheet.TotalHours.StringFixed(2)),
		Hours:       timesheet.TotalHours,
		Rate:        timesheet.HourlyRate,
	}

	invoice, err := s.accounting.CreateInvoice(ctx, s.contactRef, line, time.Now().Add(s.invoiceDueIn))
	if err != nil {
		logger.Warn("Invoice creation failed", slog.String("timesheet_id", timesheetID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.timesheetRepo.UpdateTimesheetInvoice(ctx, timesheetID, invoice.InvoiceID, invoice.InvoiceNumber, invoice.Status, systemActorID, time.Now()); err != nil {
		logger.Error("Invoice created but reference could not be recorded",
			slog.String("timesheet_id", timesheetID), slog.String("invoice_id", invoice.InvoiceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record invoice reference: %w", err)
	}

	logger.Info("Invoice created for timesheet",
		slog.String("timesheet_id", timesheetID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))

	return &dto.InvoiceRefResponse{
		InvoiceID:     invoice.InvoiceID,
		InvoiceNumber: invoice.InvoiceNumber,
		Status:        invoice.Status,
	}, nil
}

// SyncInvoiceStatus refreshes the invoice's external status and, once the
// invoice is fully settled, transitions the timesheet to paid.
func (s *InvoicingService) SyncInvoiceStatus(ctx context.Context, timesheetID string) (*domain.ShiftTimesheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	timesheet, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load timesheet: %w", err)
	}
	if !timesheet.IsInvoiced() {
		return nil, fmt.Errorf("%w: timesheet has no invoice to sync", apperrors.ErrValidation)
	}

	invoice, err := s.accounting.GetInvoice(ctx, *timesheet.XeroInvoiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if invoice.Status == invoicePaidStatus && timesheet.Status != domain.TimesheetPaid {
		if err := s.timesheetRepo.MarkTimesheetPaid(ctx, timesheetID, invoice.Status, now, systemActorID); err != nil {
			return nil, fmt.Errorf("failed to mark timesheet paid: %w", err)
		}
		logger.Info("Timesheet paid, invoice settled", slog.String("timesheet_id", timesheetID), slog.String("invoice_id", invoice.InvoiceID))
	} else if timesheet.XeroStatus == nil || *timesheet.XeroStatus != invoice.Status {
		if err := s.timesheetRepo.UpdateTimesheetInvoice(ctx, timesheetID, invoice.InvoiceID, invoice.InvoiceNumber, invoice.Status, systemActorID, now); err != nil {
			return nil, fmt.Errorf("failed to refresh invoice status: %w", err)
		}
	}

	return s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
}

// ReconcileOnce performs one reconciliation sweep: it retries invoicing for
// approved-but-uninvoiced timesheets and refreshes non-terminal invoice
// statuses. Individual failures are logged and skipped, the accounting system
// being down must not stall the sweep.
func (s *InvoicingService) ReconcileOnce(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sheets, err := s.timesheetRepo.ListTimesheetsForInvoiceSync(ctx, reconcileBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list timesheets for reconciliation: %w", err)
	}

	touched := 0
	for i := range sheets {
		ts := &sheets[i]
		if ts.IsInvoiced() {
			_, err = s.SyncInvoiceStatus(ctx, ts.TimesheetID)
		} else {
			_, err = s.CreateInvoiceForTimesheet(ctx, ts.TimesheetID)
		}
		if err != nil {
			logger.Warn("Reconciliation step failed",
				slog.String("timesheet_id", ts.TimesheetID), slog.String("error", err.Error()))
			continue
		}
		touched++
	}

	if len(sheets) > 0 {
		logger.Info("Reconciliation sweep finished", slog.Int("candidates", len(sheets)), slog.Int("touched", touched))
	}
	return touched, nil
}
