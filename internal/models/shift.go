package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus mirrors the shift status enum stored in the shifts table.
type ShiftStatus string

const (
	ShiftDraft     ShiftStatus = "draft"
	ShiftPublished ShiftStatus = "published"
	ShiftAssigned  ShiftStatus = "assigned"
	ShiftCompleted ShiftStatus = "completed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// Shift represents a row of the shifts table.
// Latitude/Longitude are nullable together: a shift either has coordinates or not.
type Shift struct {
	ShiftID         string          `db:"shift_id"`
	OrgID           string          `db:"org_id"`
	Title           string          `db:"title"`
	Address         string          `db:"address"`
	Latitude        *float64        `db:"latitude"`
	Longitude       *float64        `db:"longitude"`
	StartTime       time.Time       `db:"start_time"`
	EndTime         time.Time       `db:"end_time"`
	HourlyRate      decimal.Decimal `db:"hourly_rate"`
	Status          ShiftStatus     `db:"status"`
	AssignedStaffID *string         `db:"assigned_staff_id"`
	AuditFields
}
