package dto

import (
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShiftRequest defines the payload for posting a new shift.
// Coordinates are optional; when absent the address is geocoded best-effort.
type CreateShiftRequest struct {
	Title      string          `json:"title" binding:"required"`
	Address    string          `json:"address" binding:"required"`
	Lat        *float64        `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lon        *float64        `json:"lon" binding:"omitempty,min=-180,max=180"`
	StartTime  time.Time       `json:"startTime" binding:"required"`
	EndTime    time.Time       `json:"endTime" binding:"required,gtfield=StartTime"`
	HourlyRate decimal.Decimal `json:"hourlyRate" binding:"required"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID         string          `json:"shiftID"`
	OrgID           string          `json:"orgID"`
	Title           string          `json:"title"`
	Address         string          `json:"address"`
	Lat             *float64        `json:"lat,omitempty"`
	Lon             *float64        `json:"lon,omitempty"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         time.Time       `json:"endTime"`
	HourlyRate      decimal.Decimal `json:"hourlyRate"`
	Status          string          `json:"status"`
	AssignedStaffID *string         `json:"assignedStaffID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListShiftsParams holds parameters for listing shifts.
type ListShiftsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListShiftsResponse defines the paginated shift listing.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToShiftResponse converts a domain.Shift to ShiftResponse DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	resp := ShiftResponse{
		ShiftID:         s.ShiftID,
		OrgID:           s.OrgID,
		Title:           s.Title,
		Address:         s.Address,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		HourlyRate:      s.HourlyRate,
		Status:          string(s.Status),
		AssignedStaffID: s.AssignedStaffID,
		CreatedAt:       s.CreatedAt,
	}
	if s.Location != nil {
		lat, lon := s.Location.Lat, s.Location.Lon
		resp.Lat = &lat
		resp.Lon = &lon
	}
	return resp
}

// ToShiftResponses converts a slice of domain.Shift to []ShiftResponse.
func ToShiftResponses(shifts []domain.Shift) []ShiftResponse {
	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = ToShiftResponse(&shifts[i])
	}
	return responses
}
