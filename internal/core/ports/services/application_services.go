package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// ApplicationIntakeSvc defines staff-side application operations
type ApplicationIntakeSvc interface {
	// Apply records a staff member's application to a published shift.
	Apply(ctx context.Context, shiftID string, staffID string, req dto.ApplyRequest) (*domain.ShiftApplication, error)

	// CancelApplication withdraws the staff member's own pending application.
	CancelApplication(ctx context.Context, applicationID string, staffID string) error
}

// ApplicationReviewSvc defines organization-side application operations
type ApplicationReviewSvc interface {
	// ListApplicationsForShift retrieves all applications on a shift the
	// organization owns.
	ListApplicationsForShift(ctx context.Context, orgID string, shiftID string) ([]domain.ShiftApplication, error)

	// ReviewApplication executes the accept/reject decision. Accepting runs the
	// exactly-once assignment transaction: this application becomes accepted,
	// the shift becomes assigned to the applicant, and every other pending
	// application on the shift is rejected, all atomically.
	ReviewApplication(ctx context.Context, orgID string, applicationID string, actingUserID string, action domain.ReviewAction, notes string) (*dto.ReviewApplicationResponse, error)
}

// ApplicationSvcFacade combines all application-related service interfaces
type ApplicationSvcFacade interface {
	ApplicationIntakeSvc
	ApplicationReviewSvc
}
