package dto

// FulfilmentReportResponse aggregates shift fulfilment figures for one organization.
// AvgTimeToFillHours is computed from accepted applications' review timestamps;
// ApproxSampleCount says how many samples were estimated (missing reviewed_at,
// assumed created_at + 24h) rather than measured.
type FulfilmentReportResponse struct {
	TotalShifts        int     `json:"totalShifts"`
	AssignedShifts     int     `json:"assignedShifts"`
	CompletedShifts    int     `json:"completedShifts"`
	FillRate           float64 `json:"fillRate"`
	AvgTimeToFillHours float64 `json:"avgTimeToFillHours"`
	SampleCount        int     `json:"sampleCount"`
	ApproxSampleCount  int     `json:"approxSampleCount"`
}
