package dto

import (
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReviewTimesheetRequest carries the reviewer's note for approve/reject/force-approve.
type ReviewTimesheetRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

// ResolveDisputeRequest defines where a disputed (rejected) timesheet moves next.
type ResolveDisputeRequest struct {
	TargetStatus string `json:"targetStatus" binding:"required,oneof=approved under_review"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// InvoiceRefResponse is the external accounting reference recorded on a timesheet.
type InvoiceRefResponse struct {
	InvoiceID     string `json:"invoiceID"`
	InvoiceNumber string `json:"invoiceNumber"`
	Status        string `json:"status,omitempty"`
}

// TimesheetResponse defines the data returned for a timesheet.
type TimesheetResponse struct {
	TimesheetID        string          `json:"timesheetID"`
	ShiftID            string          `json:"shiftID"`
	VerificationMethod string          `json:"verificationMethod,omitempty"`
	ClockInVerified    bool            `json:"clockInVerified"`
	ClockOutVerified   bool            `json:"clockOutVerified"`
	TotalHours         decimal.Decimal `json:"totalHours"`
	HourlyRate         decimal.Decimal `json:"hourlyRate"`
	TotalPay           decimal.Decimal `json:"totalPay"`
	Status             string          `json:"status"`
	Notes              string          `json:"notes,omitempty"`
	SubmittedAt        *time.Time      `json:"submittedAt,omitempty"`
	ReviewedAt         *time.Time      `json:"reviewedAt,omitempty"`
	ApprovedBy         *string         `json:"approvedBy,omitempty"`
	XeroInvoiceID      *string         `json:"xeroInvoiceID,omitempty"`
	XeroInvoiceNumber  *string         `json:"xeroInvoiceNumber,omitempty"`
	XeroStatus         *string         `json:"xeroStatus,omitempty"`
	StaffPayStatus     string          `json:"staffPayStatus"`
	StaffPaidAt        *time.Time      `json:"staffPaidAt,omitempty"`
	PaidAt             *time.Time      `json:"paidAt,omitempty"`
}

// TimesheetActionResponse reports the outcome of a review-state mutation.
// Invoice is nil when invoicing was not attempted or failed; Warning carries
// the soft failure so an approval is never lost to an accounting outage.
type TimesheetActionResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Timesheet TimesheetResponse   `json:"timesheet"`
	Invoice   *InvoiceRefResponse `json:"invoice,omitempty"`
	Warning   string              `json:"warning,omitempty"`
}

// ListTimesheetsParams holds parameters for listing timesheets.
type ListTimesheetsParams struct {
	Status    *string `form:"status" binding:"omitempty,oneof=pending_submission submitted under_review approved rejected paid"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTimesheetsResponse defines the paginated timesheet listing.
type ListTimesheetsResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

// ToTimesheetResponse converts a domain.ShiftTimesheet to TimesheetResponse DTO.
func ToTimesheetResponse(t *domain.ShiftTimesheet) TimesheetResponse {
	return TimesheetResponse{
		TimesheetID:        t.TimesheetID,
		ShiftID:            t.ShiftID,
		VerificationMethod: string(t.VerificationMethod),
		ClockInVerified:    t.ClockInVerified,
		ClockOutVerified:   t.ClockOutVerified,
		TotalHours:         t.TotalHours,
		HourlyRate:         t.HourlyRate,
		TotalPay:           t.TotalPay,
		Status:             string(t.Status),
		Notes:              t.Notes,
		SubmittedAt:        t.SubmittedAt,
		ReviewedAt:         t.ReviewedAt,
		ApprovedBy:         t.ApprovedBy,
		XeroInvoiceID:      t.XeroInvoiceID,
		XeroInvoiceNumber:  t.XeroInvoiceNumber,
		XeroStatus:         t.XeroStatus,
		StaffPayStatus:     string(t.StaffPayStatus),
		StaffPaidAt:        t.StaffPaidAt,
		PaidAt:             t.PaidAt,
	}
}

// ToTimesheetResponses converts a slice of domain.ShiftTimesheet to []TimesheetResponse.
func ToTimesheetResponses(sheets []domain.ShiftTimesheet) []TimesheetResponse {
	responses := make([]TimesheetResponse, len(sheets))
	for i := range sheets {
		responses[i] = ToTimesheetResponse(&sheets[i])
	}
	return responses
}
