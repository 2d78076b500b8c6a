package repositories

import (
	"context"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
)

// ApplicationReader defines read operations for shift application data
type ApplicationReader interface {
	// FindApplicationByID retrieves a specific application by its unique identifier.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.ShiftApplication, error)

	// FindApplicationByShiftAndStaff retrieves the application a staff member made for a shift, if any.
	FindApplicationByShiftAndStaff(ctx context.Context, shiftID, staffID string) (*domain.ShiftApplication, error)

	// ListApplicationsByShift retrieves all applications for a shift, newest first.
	ListApplicationsByShift(ctx context.Context, shiftID string) ([]domain.ShiftApplication, error)
}

// ApplicationWriter defines write operations for shift application data
type ApplicationWriter interface {
	// SaveApplication persists a new application.
	// Returns apperrors.ErrDuplicate when the (shift, staff) pair already applied.
	SaveApplication(ctx context.Context, application domain.ShiftApplication) error

	// UpdateApplicationStatus moves a single application to a new status, stamping reviewed_at.
	UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, notes string, updatedByUserID string, updatedAt time.Time) error

	// AcceptApplicationTx executes the exactly-once assignment transaction:
	// under row locks on the shift and its applications it (1) marks the target
	// application accepted, (2) sets the shift to assigned with the applicant as
	// assigned staff, and (3) rejects every other pending application on the
	// shift with rejectionNote. Returns apperrors.ErrConflict when the shift was
	// already assigned to a different staff member and apperrors.ErrValidation
	// when the shift is no longer published or the application is not pending.
	AcceptApplicationTx(ctx context.Context, applicationID string, rejectionNote string, actingUserID string, now time.Time) (*domain.ShiftApplication, error)
}

// ApplicationRepositoryFacade combines all application-related repository interfaces
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
}
