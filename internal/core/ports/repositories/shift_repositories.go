package repositories

import (
	"context"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its unique identifier.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// ListShiftsByOrg retrieves a paginated list of shifts for an organization using token-based pagination.
	// It returns the shifts, a token for the next page, and an error.
	ListShiftsByOrg(ctx context.Context, orgID string, limit int, nextToken *string) ([]domain.Shift, *string, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a new shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// UpdateShiftStatus moves a shift to a new status.
	UpdateShiftStatus(ctx context.Context, shiftID string, status domain.ShiftStatus, updatedByUserID string, updatedAt time.Time) error

	// UpdateShiftLocation sets the geocoded coordinates of a shift.
	UpdateShiftLocation(ctx context.Context, shiftID string, location domain.Coordinates, updatedByUserID string, updatedAt time.Time) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
