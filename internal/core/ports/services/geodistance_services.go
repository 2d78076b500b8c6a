package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
)

// GeodistanceSvcFacade computes the distance between two coordinates.
// It fails softly: a nil endpoint yields an invalid (empty) Distance, and a
// provider outage degrades to the great-circle fallback. It never returns an
// error, so geofence and payment logic are never blocked by the mapping
// provider.
type GeodistanceSvcFacade interface {
	Distance(ctx context.Context, origin, dest *domain.Coordinates) domain.Distance
}
