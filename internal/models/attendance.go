package models

import "time"

// AttendanceStatus mirrors the attendance status enum in shift_attendances.
type AttendanceStatus string

const (
	NotCheckedIn AttendanceStatus = "not_checked_in"
	CheckedIn    AttendanceStatus = "checked_in"
	CheckedOut   AttendanceStatus = "checked_out"
)

// ShiftAttendance represents a row of the shift_attendances table (unique per shift).
type ShiftAttendance struct {
	AttendanceID  string           `db:"attendance_id"`
	ShiftID       string           `db:"shift_id"`
	Status        AttendanceStatus `db:"status"`
	CheckInTime   *time.Time       `db:"check_in_time"`
	CheckOutTime  *time.Time       `db:"check_out_time"`
	LocationCheck string           `db:"location_check"`
	AuditFields
}
