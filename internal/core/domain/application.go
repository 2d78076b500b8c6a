package domain

import "time"

// ApplicationStatus defines the lifecycle state of a shift application.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationCancelled ApplicationStatus = "cancelled"
)

// ReviewAction is the decision an organization takes on a pending application.
type ReviewAction string

const (
	ReviewAccept ReviewAction = "accept"
	ReviewReject ReviewAction = "reject"
)

// ShiftApplication is a worker's request to fill a shift.
// (ShiftID, StaffID) is unique; at most one application per shift is ever accepted.
type ShiftApplication struct {
	ApplicationID string            `json:"applicationID"`
	ShiftID       string            `json:"shiftID"`
	StaffID       string            `json:"staffID"`
	Status        ApplicationStatus `json:"status"`
	Notes         string            `json:"notes"`
	ReviewedAt    *time.Time        `json:"reviewedAt"`
	AuditFields
}
