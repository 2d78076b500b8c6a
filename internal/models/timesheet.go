package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetStatus mirrors the timesheet status enum in shift_timesheets.
type TimesheetStatus string

const (
	TimesheetPendingSubmission TimesheetStatus = "pending_submission"
	TimesheetSubmitted         TimesheetStatus = "submitted"
	TimesheetUnderReview       TimesheetStatus = "under_review"
	TimesheetApproved          TimesheetStatus = "approved"
	TimesheetRejected          TimesheetStatus = "rejected"
	TimesheetPaid              TimesheetStatus = "paid"
)

// PayStatus mirrors the staff_pay_status enum in shift_timesheets.
type PayStatus string

const (
	PayUnpaid PayStatus = "unpaid"
	PayPaid   PayStatus = "paid"
)

// ShiftTimesheet represents a row of the shift_timesheets table (unique per shift).
type ShiftTimesheet struct {
	TimesheetID        string          `db:"timesheet_id"`
	ShiftID            string          `db:"shift_id"`
	VerificationMethod string          `db:"verification_method"`
	ClockInVerified    bool            `db:"clock_in_verified"`
	ClockOutVerified   bool            `db:"clock_out_verified"`
	TotalHours         decimal.Decimal `db:"total_hours"`
	HourlyRate         decimal.Decimal `db:"hourly_rate"`
	TotalPay           decimal.Decimal `db:"total_pay"`
	Status             TimesheetStatus `db:"status"`
	Notes              string          `db:"notes"`
	SubmittedAt        *time.Time      `db:"submitted_at"`
	ReviewedAt         *time.Time      `db:"reviewed_at"`
	ApprovedBy         *string         `db:"approved_by"`
	XeroInvoiceID      *string         `db:"xero_invoice_id"`
	XeroInvoiceNumber  *string         `db:"xero_invoice_number"`
	XeroStatus         *string         `db:"xero_status"`
	StaffPayStatus     PayStatus       `db:"staff_pay_status"`
	StaffPaidAt        *time.Time      `db:"staff_paid_at"`
	PaidAt             *time.Time      `db:"paid_at"`
	AuditFields
}
