package dto

import (
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
)

// ApplyRequest defines the payload for a staff member applying to a shift.
type ApplyRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

// ReviewApplicationRequest defines the accept/reject decision on an application.
type ReviewApplicationRequest struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
	Notes  string `json:"notes" binding:"max=500"`
}

// ApplicationResponse defines the data returned for a shift application.
type ApplicationResponse struct {
	ApplicationID string     `json:"applicationID"`
	ShiftID       string     `json:"shiftID"`
	StaffID       string     `json:"staffID"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ReviewApplicationResponse reports the outcome of an accept/reject decision.
type ReviewApplicationResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Application ApplicationResponse `json:"application"`
}

// ToApplicationResponse converts a domain.ShiftApplication to ApplicationResponse DTO.
func ToApplicationResponse(a *domain.ShiftApplication) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID: a.ApplicationID,
		ShiftID:       a.ShiftID,
		StaffID:       a.StaffID,
		Status:        string(a.Status),
		Notes:         a.Notes,
		ReviewedAt:    a.ReviewedAt,
		CreatedAt:     a.CreatedAt,
	}
}

// ToApplicationResponses converts a slice of domain.ShiftApplication to []ApplicationResponse.
func ToApplicationResponses(apps []domain.ShiftApplication) []ApplicationResponse {
	responses := make([]ApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = ToApplicationResponse(&apps[i])
	}
	return responses
}
