package mapping

import (
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/models"
)

// ToModelShiftAttendance converts a domain ShiftAttendance to a model ShiftAttendance
func ToModelShiftAttendance(d domain.ShiftAttendance) models.ShiftAttendance {
	return models.ShiftAttendance{
		AttendanceID:  d.AttendanceID,
		ShiftID:       d.ShiftID,
		Status:        models.AttendanceStatus(d.Status),
		CheckInTime:   d.CheckInTime,
		CheckOutTime:  d.CheckOutTime,
		LocationCheck: d.LocationCheck,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShiftAttendance converts a model ShiftAttendance to a domain ShiftAttendance
func ToDomainShiftAttendance(m models.ShiftAttendance) domain.ShiftAttendance {
	return domain.ShiftAttendance{
		AttendanceID:  m.AttendanceID,
		ShiftID:       m.ShiftID,
		Status:        domain.AttendanceStatus(m.Status),
		CheckInTime:   m.CheckInTime,
		CheckOutTime:  m.CheckOutTime,
		LocationCheck: m.LocationCheck,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
