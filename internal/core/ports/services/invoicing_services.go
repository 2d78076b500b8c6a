package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// InvoicingSvcFacade is the handoff boundary to the external accounting system.
type InvoicingSvcFacade interface {
	// CreateInvoiceForTimesheet requests invoice creation for an approved
	// timesheet. Idempotent: an already-invoiced timesheet returns the existing
	// reference without creating a duplicate. Returns apperrors.ErrUnavailable
	// (retryable) when the accounting system is unreachable; no timesheet
	// status is mutated on failure.
	CreateInvoiceForTimesheet(ctx context.Context, timesheetID string) (*dto.InvoiceRefResponse, error)

	// SyncInvoiceStatus pulls the invoice's current external status and, when
	// it indicates full payment, transitions the timesheet to paid.
	SyncInvoiceStatus(ctx context.Context, timesheetID string) (*domain.ShiftTimesheet, error)

	// ReconcileOnce performs one reconciliation sweep: retries invoicing for
	// approved-but-uninvoiced timesheets and refreshes non-terminal invoice
	// statuses. Returns how many timesheets were touched.
	ReconcileOnce(ctx context.Context) (int, error)
}
