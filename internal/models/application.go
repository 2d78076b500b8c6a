package models

import "time"

// ApplicationStatus mirrors the application status enum in shift_applications.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationCancelled ApplicationStatus = "cancelled"
)

// ShiftApplication represents a row of the shift_applications table.
// (shift_id, staff_id) carries a composite unique constraint.
type ShiftApplication struct {
	ApplicationID string            `db:"application_id"`
	ShiftID       string            `db:"shift_id"`
	StaffID       string            `db:"staff_id"`
	Status        ApplicationStatus `db:"status"`
	Notes         string            `db:"notes"`
	ReviewedAt    *time.Time        `db:"reviewed_at"`
	AuditFields
}
