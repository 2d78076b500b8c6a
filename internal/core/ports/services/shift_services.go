package services

import (
	"context"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/dto"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a specific shift, scoped to the requesting organization.
	GetShiftByID(ctx context.Context, orgID string, shiftID string) (*domain.Shift, error)

	// ListShifts retrieves a paginated list of an organization's shifts.
	ListShifts(ctx context.Context, orgID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error)
}

// ShiftWriterSvc defines write operations for shift data
type ShiftWriterSvc interface {
	// CreateShift posts a new shift in draft status, geocoding the address
	// best-effort when no coordinates were supplied.
	CreateShift(ctx context.Context, orgID string, req dto.CreateShiftRequest, creatorUserID string) (*domain.Shift, error)

	// PublishShift opens a draft shift for applications.
	PublishShift(ctx context.Context, orgID string, shiftID string, actingUserID string) (*domain.Shift, error)

	// CancelShift cancels a draft or published shift.
	CancelShift(ctx context.Context, orgID string, shiftID string, actingUserID string) (*domain.Shift, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
