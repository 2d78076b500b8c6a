package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus defines the lifecycle state of a shift.
// Values are stored verbatim, existing rows depend on them.
type ShiftStatus string

const (
	ShiftDraft     ShiftStatus = "draft"
	ShiftPublished ShiftStatus = "published"
	ShiftAssigned  ShiftStatus = "assigned"
	ShiftCompleted ShiftStatus = "completed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// Shift represents a single bookable work slot at a facility.
// AssignedStaffID is non-nil iff Status is assigned or completed; the
// assignment transaction is the only writer of either field.
type Shift struct {
	ShiftID         string          `json:"shiftID"`
	OrgID           string          `json:"orgID"` // Posting organization (owner)
	Title           string          `json:"title"`
	Address         string          `json:"address"`
	Location        *Coordinates    `json:"location"` // nil until geocoded or provided
	StartTime       time.Time       `json:"startTime"`
	EndTime         time.Time       `json:"endTime"`
	HourlyRate      decimal.Decimal `json:"hourlyRate"`
	Status          ShiftStatus     `json:"status"`
	AssignedStaffID *string         `json:"assignedStaffID"`
	AuditFields
}

// IsOpenForApplications reports whether staff may still apply to this shift.
func (s Shift) IsOpenForApplications() bool {
	return s.Status == ShiftPublished
}
