package services

import (
	"context"
	"fmt"

	portsrepo "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/repositories"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// ReportingService computes fulfilment figures for an organization.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &ReportingService{reportingRepo: reportingRepo}
}

// Ensure ReportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetFulfilmentReport returns fill-rate and average time-to-fill figures.
// The average marks how many samples were estimated rather than measured, so
// consumers can judge the figure's reliability.
func (s *ReportingService) GetFulfilmentReport(ctx context.Context, orgID string) (*dto.FulfilmentReportResponse, error) {
	total, assigned, completed, err := s.reportingRepo.GetFulfilmentCounts(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfilment counts: %w", err)
	}

	report := &dto.FulfilmentReportResponse{
		TotalShifts:     total,
		AssignedShifts:  assigned,
		CompletedShifts: completed,
	}
	if total > 0 {
		report.FillRate = float64(assigned+completed) / float64(total)
	}

	samples, err := s.reportingRepo.ListTimeToFillSamples(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-to-fill samples: %w", err)
	}

	report.SampleCount = len(samples)
	if len(samples) > 0 {
		var totalHours float64
		for _, sample := range samples {
			totalHours += sample.TimeToFill.Hours()
			if sample.Approx {
				report.ApproxSampleCount++
			}
		}
		report.AvgTimeToFillHours = totalHours / float64(len(samples))
	}
	return report, nil
}
