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

// ShiftService handles business logic for the shift lifecycle.
type ShiftService struct {
	shiftRepo  portsrepo.ShiftRepositoryFacade
	geomapping portssvc.GeomappingProvider
}

// NewShiftService creates a new ShiftService.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, geomapping portssvc.GeomappingProvider) portssvc.ShiftSvcFacade {
	return &ShiftService{
		shiftRepo:  shiftRepo,
		geomapping: geomapping,
	}
}

// Ensure ShiftService implements the portssvc.ShiftSvcFacade interface
var _ portssvc.ShiftSvcFacade = (*ShiftService)(nil)

// CreateShift posts a new shift in draft status. When no coordinates were
// supplied the address is geocoded best-effort: a provider outage leaves the
// location unset rather than failing the create.
func (s *ShiftService) CreateShift(ctx context.Context, orgID string, req dto.CreateShiftRequest, creatorUserID string) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.HourlyRate.IsPositive() {
		return nil, fmt.Errorf("%w: hourly rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	shift := domain.Shift{
		ShiftID:    uuid.NewString(),
		OrgID:      orgID,
		Title:      req.Title,
		Address:    req.Address,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		HourlyRate: req.HourlyRate,
		Status:     domain.ShiftDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.Lat != nil && req.Lon != nil {
		shift.Location = &domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	} else if s.geomapping != nil {
		coords, err := s.geomapping.Geocode(ctx, req.Address)
		if err != nil {
			logger.Warn("Geocoding failed, shift created without coordinates",
				slog.String("shift_id", shift.ShiftID), slog.String("error", err.Error()))
		} else {
			shift.Location = coords
		}
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		logger.Error("Failed to save shift", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	logger.Info("Shift created", slog.String("shift_id", shift.ShiftID), slog.String("org_id", orgID))
	return &shift, nil
}

// PublishShift opens a draft shift for applications.
func (s *ShiftService) PublishShift(ctx context.Context, orgID string, shiftID string, actingUserID string) (*domain.Shift, error) {
	return s.transition(ctx, orgID, shiftID, actingUserID, domain.ShiftPublished, func(shift *domain.Shift) error {
		if shift.Status != domain.ShiftDraft {
			return fmt.Errorf("%w: only draft shifts can be published, current status is %s", apperrors.ErrValidation, shift.Status)
		}
		return nil
	})
}

// CancelShift cancels a shift that has not yet been assigned.
func (s *ShiftService) CancelShift(ctx context.Context, orgID string, shiftID string, actingUserID string) (*domain.Shift, error) {
	return s.transition(ctx, orgID, shiftID, actingUserID, domain.ShiftCancelled, func(shift *domain.Shift) error {
		if shift.Status != domain.ShiftDraft && shift.Status != domain.ShiftPublished {
			return fmt.Errorf("%w: only draft or published shifts can be cancelled, current status is %s", apperrors.ErrValidation, shift.Status)
		}
		return nil
	})
}

// transition applies a guarded status change to a shift the organization owns.
func (s *ShiftService) transition(ctx context.Context, orgID, shiftID, actingUserID string, target domain.ShiftStatus, guard func(*domain.Shift) error) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	shift, err := s.GetShiftByID(ctx, orgID, shiftID)
	if err != nil {
		return nil, err
	}
	if err := guard(shift); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.shiftRepo.UpdateShiftStatus(ctx, shiftID, target, actingUserID, now); err != nil {
		logger.Error("Failed to update shift status", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update shift status: %w", err)
	}

	shift.Status = target
	shift.LastUpdatedAt = now
	shift.LastUpdatedBy = actingUserID
	logger.Info("Shift status updated", slog.String("shift_id", shiftID), slog.String("status", string(target)))
	return shift, nil
}

// GetShiftByID retrieves a shift, scoped to the requesting organization.
func (s *ShiftService) GetShiftByID(ctx context.Context, orgID string, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	if shift.OrgID != orgID {
		return nil, fmt.Errorf("%w: shift belongs to a different organization", apperrors.ErrForbidden)
	}
	return shift, nil
}

// ListShifts retrieves a paginated list of an organization's shifts.
func (s *ShiftService) ListShifts(ctx context.Context, orgID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	shifts, nextToken, err := s.shiftRepo.ListShiftsByOrg(ctx, orgID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return &dto.ListShiftsResponse{
		Shifts:    dto.ToShiftResponses(shifts),
		NextToken: nextToken,
	}, nil
}
