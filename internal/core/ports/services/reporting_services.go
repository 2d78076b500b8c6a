package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// ReportingSvcFacade provides fulfilment reporting for an organization.
type ReportingSvcFacade interface {
	// GetFulfilmentReport returns fill-rate and average time-to-fill figures.
	GetFulfilmentReport(ctx context.Context, orgID string) (*dto.FulfilmentReportResponse, error)
}
