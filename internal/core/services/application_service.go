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
	"github.com/google/uuid"
)

const rejectionNoteOnAccept = "Shift has been assigned to another applicant"

// ApplicationService handles business logic for shift applications, including
// the assignment decision.
type ApplicationService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade
	shiftRepo       portsrepo.ShiftRepositoryFacade
	notifier        portssvc.NotificationDispatcher
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applicationRepo portsrepo.ApplicationRepositoryFacade, shiftRepo portsrepo.ShiftRepositoryFacade, notifier portssvc.NotificationDispatcher) portssvc.ApplicationSvcFacade {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		shiftRepo:       shiftRepo,
		notifier:        notifier,
	}
}

// Ensure ApplicationService implements the portssvc.ApplicationSvcFacade interface
var _ portssvc.ApplicationSvcFacade = (*ApplicationService)(nil)

// Apply records a staff member's application to a published shift.
func (s *ApplicationService) Apply(ctx context.Context, shiftID string, staffID string, req dto.ApplyRequest) (*domain.ShiftApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shift for application: %w", err)
	}
	if !shift.IsOpenForApplications() {
		return nil, fmt.Errorf("%w: shift is not open for applications, status is %s", apperrors.ErrValidation, shift.Status)
	}

	now := time.Now()
	application := domain.ShiftApplication{
		ApplicationID: uuid.NewString(),
		ShiftID:       shiftID,
		StaffID:       staffID,
		Status:        domain.ApplicationPending,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     staffID,
			LastUpdatedAt: now,
			LastUpdatedBy: staffID,
		},
	}

	if err := s.applicationRepo.SaveApplication(ctx, application); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: staff member already applied to this shift", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save application", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	logger.Info("Application created", slog.String("application_id", application.ApplicationID), slog.String("shift_id", shiftID))
	return &application, nil
}

// CancelApplication withdraws the staff member's own pending application.
func (s *ApplicationService) CancelApplication(ctx context.Context, applicationID string, staffID string) error {
	application, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load application: %w", err)
	}
	if application.StaffID != staffID {
		return fmt.Errorf("%w: application belongs to a different staff member", apperrors.ErrForbidden)
	}
	if application.Status != domain.ApplicationPending {
		return fmt.Errorf("%w: only pending applications can be cancelled, current status is %s", apperrors.ErrValidation, application.Status)
	}

	return s.applicationRepo.UpdateApplicationStatus(ctx, applicationID, domain.ApplicationCancelled, application.Notes, staffID, time.Now())
}

// ListApplicationsForShift retrieves all applications on a shift the organization owns.
func (s *ApplicationService) ListApplicationsForShift(ctx context.Context, orgID string, shiftID string) ([]domain.ShiftApplication, error) {
	if _, err := s.ownedShift(ctx, orgID, shiftID); err != nil {
		return nil, err
	}
	applications, err := s.applicationRepo.ListApplicationsByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// ReviewApplication executes the accept/reject decision on a pending
// application. Accepting runs the assignment transaction: the application is
// accepted, the shift becomes assigned to the applicant, and every other
// pending application on the shift is rejected, atomically.
func (s *ApplicationService) ReviewApplication(ctx context.Context, orgID string, applicationID string, actingUserID string, action domain.ReviewAction, notes string) (*dto.ReviewApplicationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	application, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if _, err := s.ownedShift(ctx, orgID, application.ShiftID); err != nil {
		return nil, err
	}

	now := time.Now()
	switch action {
	case domain.ReviewAccept:
		accepted, err := s.applicationRepo.AcceptApplicationTx(ctx, applicationID, rejectionNoteOnAccept, actingUserID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Warn("Accept lost assignment race", slog.String("application_id", applicationID))
			}
			return nil, err
		}

		logger.Info("Application accepted, shift assigned",
			slog.String("application_id", applicationID),
			slog.String("shift_id", accepted.ShiftID),
			slog.String("staff_id", accepted.StaffID))
		s.notifyBestEffort(ctx, accepted.StaffID, "You have been assigned to a shift", accepted.ShiftID)

		return &dto.ReviewApplicationResponse{
			Success:     true,
			Message:     "Application accepted and shift assigned",
			Application: dto.ToApplicationResponse(accepted),
		}, nil

	case domain.ReviewReject:
		if application.Status != domain.ApplicationPending {
			return nil, fmt.Errorf("%w: only pending applications can be rejected, current status is %s", apperrors.ErrValidation, application.Status)
		}
		if err := s.applicationRepo.UpdateApplicationStatus(ctx, applicationID, domain.ApplicationRejected, notes, actingUserID, now); err != nil {
			return nil, fmt.Errorf("failed to reject application: %w", err)
		}

		application.Status = domain.ApplicationRejected
		application.Notes = notes
		application.ReviewedAt = &now
		s.notifyBestEffort(ctx, application.StaffID, "Your shift application was not successful", application.ShiftID)

		return &dto.ReviewApplicationResponse{
			Success:     true,
			Message:     "Application rejected",
			Application: dto.ToApplicationResponse(application),
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown review action %q", apperrors.ErrValidation, action)
	}
}

// ownedShift loads a shift and verifies the organization owns it.
func (s *ApplicationService) ownedShift(ctx context.Context, orgID, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	if shift.OrgID != orgID {
		return nil, fmt.Errorf("%w: shift belongs to a different organization", apperrors.ErrForbidden)
	}
	return shift, nil
}

// notifyBestEffort sends a notification and only logs delivery failures.
func (s *ApplicationService) notifyBestEffort(ctx context.Context, staffID, text, entityRef string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, staffID, text, entityRef); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Notification delivery failed",
			slog.String("staff_id", staffID), slog.String("error", err.Error()))
	}
}
