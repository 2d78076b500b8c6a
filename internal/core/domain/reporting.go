package domain

import "time"

// FulfilmentStats aggregates shift fulfilment figures for one organization.
type FulfilmentStats struct {
	TotalShifts     int     `json:"totalShifts"`
	AssignedShifts  int     `json:"assignedShifts"`
	CompletedShifts int     `json:"completedShifts"`
	FillRate        float64 `json:"fillRate"` // assigned+completed over total, 0..1
}

// TimeToFillSample is one accepted application's posting-to-assignment interval.
// Approx is true when the acceptance timestamp was missing and the interval was
// estimated as created_at + 24h; callers must surface how many samples are
// estimates rather than measurements.
type TimeToFillSample struct {
	ShiftID    string        `json:"shiftID"`
	TimeToFill time.Duration `json:"timeToFill"`
	Approx     bool          `json:"approx"`
}
