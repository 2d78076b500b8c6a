package services

import (
	"context"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeomappingProvider is the external mapping collaborator. Both operations may
// fail with apperrors.ErrUnavailable when the provider is rate-limited,
// unconfigured or times out; callers fall back or degrade.
type GeomappingProvider interface {
	// Geocode resolves a street address to coordinates.
	Geocode(ctx context.Context, address string) (*domain.Coordinates, error)

	// RouteDistance returns the driving distance in metres and the travel
	// duration between two coordinates.
	RouteDistance(ctx context.Context, origin, dest domain.Coordinates) (meters float64, duration time.Duration, err error)
}

// InvoiceLineItem is the single billable line of a timesheet invoice.
type InvoiceLineItem struct {
	Description string
	Hours       decimal.Decimal
	Rate        decimal.Decimal
}

// AccountingInvoice is the external accounting system's view of an invoice.
type AccountingInvoice struct {
	InvoiceID     string
	InvoiceNumber string
	Status        string
	AmountPaid    decimal.Decimal
}

// AccountingProvider is the Xero-like external accounting collaborator.
// Failures surface as apperrors.ErrUnavailable and are treated as retryable.
type AccountingProvider interface {
	// CreateInvoice creates an invoice with one line item for the given contact.
	CreateInvoice(ctx context.Context, contactRef string, line InvoiceLineItem, dueDate time.Time) (*AccountingInvoice, error)

	// GetInvoice fetches the current status of an invoice.
	GetInvoice(ctx context.Context, invoiceID string) (*AccountingInvoice, error)
}

// NotificationDispatcher delivers fire-and-forget user notifications.
// Failures are logged by callers, never propagated into the state machine.
type NotificationDispatcher interface {
	Notify(ctx context.Context, userID string, text string, entityRef string) error
}
