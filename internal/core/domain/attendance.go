package domain

import "time"

// AttendanceStatus defines the check-in state machine for one shift.
// Transitions only move forward: not_checked_in -> checked_in -> checked_out.
type AttendanceStatus string

const (
	NotCheckedIn AttendanceStatus = "not_checked_in"
	CheckedIn    AttendanceStatus = "checked_in"
	CheckedOut   AttendanceStatus = "checked_out"
)

// ShiftAttendance is the 1:1 attendance satellite of a shift, created lazily
// the first time a geofence check passes. Only the assigned staff member may
// mutate it; checked_out is terminal.
type ShiftAttendance struct {
	AttendanceID  string           `json:"attendanceID"`
	ShiftID       string           `json:"shiftID"`
	Status        AttendanceStatus `json:"status"`
	CheckInTime   *time.Time       `json:"checkInTime"`
	CheckOutTime  *time.Time       `json:"checkOutTime"`
	LocationCheck string           `json:"locationCheck"` // human-readable verification marker
	AuditFields
}
