package dto

import (
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeofenceCheckRequest carries the worker's reported GPS position.
type GeofenceCheckRequest struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lon float64 `json:"lon" binding:"min=-180,max=180"`
}

// DistanceResponse is the measured distance between worker and shift location.
type DistanceResponse struct {
	Meters float64 `json:"meters"`
	Km     float64 `json:"km"`
	Miles  float64 `json:"miles"`
}

// GeofenceCheckResult reports whether the geofence gate passed. Safe to poll:
// the underlying check is idempotent.
type GeofenceCheckResult struct {
	WithinGeofence bool             `json:"withinGeofence"`
	Distance       DistanceResponse `json:"distance"`
	CheckInAllowed bool             `json:"checkInAllowed"`
	Message        string           `json:"message"`
}

// AttendanceResponse defines the data returned for a shift attendance record.
type AttendanceResponse struct {
	AttendanceID  string     `json:"attendanceID"`
	ShiftID       string     `json:"shiftID"`
	Status        string     `json:"status"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	LocationCheck string     `json:"locationCheck,omitempty"`
}

// CheckOutResult reports the derived billable quantities after check-out.
type CheckOutResult struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Attendance AttendanceResponse `json:"attendance"`
	TotalHours decimal.Decimal    `json:"totalHours"`
	TotalPay   decimal.Decimal    `json:"totalPay"`
	Timesheet  TimesheetResponse  `json:"timesheet"`
}

// ToAttendanceResponse converts a domain.ShiftAttendance to AttendanceResponse DTO.
func ToAttendanceResponse(a *domain.ShiftAttendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:  a.AttendanceID,
		ShiftID:       a.ShiftID,
		Status:        string(a.Status),
		CheckInTime:   a.CheckInTime,
		CheckOutTime:  a.CheckOutTime,
		LocationCheck: a.LocationCheck,
	}
}

// ToDistanceResponse converts a domain.Distance to DistanceResponse DTO.
func ToDistanceResponse(d domain.Distance) DistanceResponse {
	return DistanceResponse{Meters: d.Meters, Km: d.Km, Miles: d.Miles}
}
