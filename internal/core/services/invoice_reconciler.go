package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
)

// InvoiceReconciler periodically sweeps for approved timesheets whose invoice
// handoff is incomplete. It exists because approval never blocks on the
// accounting system: whatever an outage left behind gets retried here.
type InvoiceReconciler struct {
	invoicing portssvc.InvoicingSvcFacade
	interval  time.Duration
	logger    *slog.Logger
}

// NewInvoiceReconciler creates a reconciler sweeping at the given interval.
func NewInvoiceReconciler(invoicing portssvc.InvoicingSvcFacade, interval time.Duration, logger *slog.Logger) *InvoiceReconciler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &InvoiceReconciler{
		invoicing: invoicing,
		interval:  interval,
		logger:    logger,
	}
}

// Run sweeps until the context is cancelled. Intended to be started in its
// own goroutine from main.
func (r *InvoiceReconciler) Run(ctx context.Context) {
	r.logger.Info("Invoice reconciler started", slog.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Invoice reconciler stopped")
			return
		case <-ticker.C:
			touched, err := r.invoicing.ReconcileOnce(ctx)
			if err != nil {
				r.logger.Error("Reconciliation sweep failed", slog.String("error", err.Error()))
				continue
			}
			if touched > 0 {
				r.logger.Info("Reconciliation sweep touched timesheets", slog.Int("count", touched))
			}
		}
	}
}
