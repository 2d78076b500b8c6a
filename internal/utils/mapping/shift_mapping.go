package mapping

import (
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	m := models.Shift{
		ShiftID:         d.ShiftID,
		OrgID:           d.OrgID,
		Title:           d.Title,
		Address:         d.Address,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		HourlyRate:      d.HourlyRate,
		Status:          models.ShiftStatus(d.Status),
		AssignedStaffID: d.AssignedStaffID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.Location != nil {
		lat, lon := d.Location.Lat, d.Location.Lon
		m.Latitude = &lat
		m.Longitude = &lon
	}
	return m
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	d := domain.Shift{
		ShiftID:         m.ShiftID,
		OrgID:           m.OrgID,
		Title:           m.Title,
		Address:         m.Address,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		HourlyRate:      m.HourlyRate,
		Status:          domain.ShiftStatus(m.Status),
		AssignedStaffID: m.AssignedStaffID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.Latitude != nil && m.Longitude != nil {
		d.Location = &domain.Coordinates{Lat: *m.Latitude, Lon: *m.Longitude}
	}
	return d
}
