package mapping

import (
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/models"
)

// ToModelShiftApplication converts a domain ShiftApplication to a model ShiftApplication
func ToModelShiftApplication(d domain.ShiftApplication) models.ShiftApplication {
	return models.ShiftApplication{
		ApplicationID: d.ApplicationID,
		ShiftID:       d.ShiftID,
		StaffID:       d.StaffID,
		Status:        models.ApplicationStatus(d.Status),
		Notes:         d.Notes,
		ReviewedAt:    d.ReviewedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShiftApplication converts a model ShiftApplication to a domain ShiftApplication
func ToDomainShiftApplication(m models.ShiftApplication) domain.ShiftApplication {
	return domain.ShiftApplication{
		ApplicationID: m.ApplicationID,
		ShiftID:       m.ShiftID,
		StaffID:       m.StaffID,
		Status:        domain.ApplicationStatus(m.Status),
		Notes:         m.Notes,
		ReviewedAt:    m.ReviewedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
