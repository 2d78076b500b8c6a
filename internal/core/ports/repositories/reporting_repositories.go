package repositories

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries for fulfilment reporting.
type ReportingRepository interface {
	// GetFulfilmentCounts returns shift counts by lifecycle bucket for an organization.
	GetFulfilmentCounts(ctx context.Context, orgID string) (total, assigned, completed int, err error)

	// ListTimeToFillSamples returns one sample per accepted application of the
	// organization's shifts. Samples without a reviewed_at timestamp are marked
	// approximate (estimated as created_at + 24h).
	ListTimeToFillSamples(ctx context.Context, orgID string) ([]domain.TimeToFillSample, error)
}
