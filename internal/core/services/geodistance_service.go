package services

import (
	"context"
	"log/slog"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/middleware"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/utils/geodistance"
)

// GeodistanceService computes worker-to-shift distances. It asks the mapping
// provider for road distance first and degrades to the great-circle formula,
// so callers always get an answer when both endpoints are known.
type GeodistanceService struct {
	geomapping portssvc.GeomappingProvider
}

// NewGeodistanceService creates a new GeodistanceService.
func NewGeodistanceService(geomapping portssvc.GeomappingProvider) portssvc.GeodistanceSvcFacade {
	return &GeodistanceService{geomapping: geomapping}
}

// Ensure GeodistanceService implements the portssvc.GeodistanceSvcFacade interface
var _ portssvc.GeodistanceSvcFacade = (*GeodistanceService)(nil)

// Distance measures the distance between two coordinates. A nil endpoint
// yields an invalid Distance with all figures zero.
func (s *GeodistanceService) Distance(ctx context.Context, origin, dest *domain.Coordinates) domain.Distance {
	if origin == nil || dest == nil {
		return domain.Distance{}
	}

	logger := middleware.GetLoggerFromCtx(ctx)

	if s.geomapping != nil {
		meters, _, err := s.geomapping.RouteDistance(ctx, *origin, *dest)
		if err == nil && meters > 0 {
			km := meters / 1000
			return domain.Distance{
				Meters: geodistance.RoundMeters(meters),
				Km:     geodistance.Round1(km),
				Miles:  geodistance.Round1(geodistance.KmToMiles(km)),
				Valid:  true,
			}
		}
		if err != nil {
			logger.Warn("Road distance lookup failed, using great-circle fallback", slog.String("error", err.Error()))
		}
	}

	km := geodistance.HaversineKm(origin.Lat, origin.Lon, dest.Lat, dest.Lon)
	return domain.Distance{
		Meters: geodistance.RoundMeters(km * 1000),
		Km:     geodistance.Round1(km),
		Miles:  geodistance.Round1(geodistance.KmToMiles(km)),
		Valid:  true,
	}
}
