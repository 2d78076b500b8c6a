package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetStatus defines the review state machine for a timesheet.
// rejected represents an active dispute awaiting resolution.
type TimesheetStatus string

const (
	TimesheetPendingSubmission TimesheetStatus = "pending_submission"
	TimesheetSubmitted         TimesheetStatus = "submitted"
	TimesheetUnderReview       TimesheetStatus = "under_review"
	TimesheetApproved          TimesheetStatus = "approved"
	TimesheetRejected          TimesheetStatus = "rejected"
	TimesheetPaid              TimesheetStatus = "paid"
)

// VerificationMethod enumerates how a worker's presence was verified.
// The stored string must stay byte-for-byte stable: the check-in gate
// compares against it and existing rows carry the legacy text.
type VerificationMethod string

const (
	VerificationNone     VerificationMethod = ""
	VerificationGeofence VerificationMethod = "Geofence Verified"
)

// PayStatus tracks whether the staff member has been paid out.
type PayStatus string

const (
	PayUnpaid PayStatus = "unpaid"
	PayPaid   PayStatus = "paid"
)

// ShiftTimesheet is the 1:1 record of worked hours and pay for a shift.
// TotalHours, HourlyRate and TotalPay are derived exactly once, at check-out,
// from the stored check-in timestamp; TotalPay = TotalHours * HourlyRate.
// Status paid additionally requires a Xero invoice whose external status is paid.
type ShiftTimesheet struct {
	TimesheetID        string             `json:"timesheetID"`
	ShiftID            string             `json:"shiftID"`
	VerificationMethod VerificationMethod `json:"verificationMethod"`
	ClockInVerified    bool               `json:"clockInVerified"`
	ClockOutVerified   bool               `json:"clockOutVerified"`
	TotalHours         decimal.Decimal    `json:"totalHours"`
	HourlyRate         decimal.Decimal    `json:"hourlyRate"`
	TotalPay           decimal.Decimal    `json:"totalPay"`
	Status             TimesheetStatus    `json:"status"`
	Notes              string             `json:"notes"`
	SubmittedAt        *time.Time         `json:"submittedAt"`
	ReviewedAt         *time.Time         `json:"reviewedAt"`
	ApprovedBy         *string            `json:"approvedBy"`
	XeroInvoiceID      *string            `json:"xeroInvoiceID"`
	XeroInvoiceNumber  *string            `json:"xeroInvoiceNumber"`
	XeroStatus         *string            `json:"xeroStatus"`
	StaffPayStatus     PayStatus          `json:"staffPayStatus"`
	StaffPaidAt        *time.Time         `json:"staffPaidAt"`
	PaidAt             *time.Time         `json:"paidAt"`
	AuditFields
}

// IsInvoiced reports whether an external invoice reference has been recorded.
func (t ShiftTimesheet) IsInvoiced() bool {
	return t.XeroInvoiceID != nil && *t.XeroInvoiceID != ""
}
