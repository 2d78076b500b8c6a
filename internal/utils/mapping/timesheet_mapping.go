package mapping

import (
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/models"
)

// ToModelShiftTimesheet converts a domain ShiftTimesheet to a model ShiftTimesheet
func ToModelShiftTimesheet(d domain.ShiftTimesheet) models.ShiftTimesheet {
	return models.ShiftTimesheet{
		TimesheetID:        d.TimesheetID,
		ShiftID:            d.ShiftID,
		VerificationMethod: string(d.VerificationMethod),
		ClockInVerified:    d.ClockInVerified,
		ClockOutVerified:   d.ClockOutVerified,
		TotalHours:         d.TotalHours,
		HourlyRate:         d.HourlyRate,
		TotalPay:           d.TotalPay,
		Status:             models.TimesheetStatus(d.Status),
		Notes:              d.Notes,
		SubmittedAt:        d.SubmittedAt,
		ReviewedAt:         d.ReviewedAt,
		ApprovedBy:         d.ApprovedBy,
		XeroInvoiceID:      d.XeroInvoiceID,
		XeroInvoiceNumber:  d.XeroInvoiceNumber,
		XeroStatus:         d.XeroStatus,
		StaffPayStatus:     models.PayStatus(d.StaffPayStatus),
		StaffPaidAt:        d.StaffPaidAt,
		PaidAt:             d.PaidAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShiftTimesheet converts a model ShiftTimesheet to a domain ShiftTimesheet
func ToDomainShiftTimesheet(m models.ShiftTimesheet) domain.ShiftTimesheet {
	return domain.ShiftTimesheet{
		TimesheetID:        m.TimesheetID,
		ShiftID:            m.ShiftID,
		VerificationMethod: domain.VerificationMethod(m.VerificationMethod),
		ClockInVerified:    m.ClockInVerified,
		ClockOutVerified:   m.ClockOutVerified,
		TotalHours:         m.TotalHours,
		HourlyRate:         m.HourlyRate,
		TotalPay:           m.TotalPay,
		Status:             domain.TimesheetStatus(m.Status),
		Notes:              m.Notes,
		SubmittedAt:        m.SubmittedAt,
		ReviewedAt:         m.ReviewedAt,
		ApprovedBy:         m.ApprovedBy,
		XeroInvoiceID:      m.XeroInvoiceID,
		XeroInvoiceNumber:  m.XeroInvoiceNumber,
		XeroStatus:         m.XeroStatus,
		StaffPayStatus:     domain.PayStatus(m.StaffPayStatus),
		StaffPaidAt:        m.StaffPaidAt,
		PaidAt:             m.PaidAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
