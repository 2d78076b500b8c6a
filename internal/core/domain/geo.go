package domain

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance is the result of a geodistance computation.
// Valid is false when either endpoint was unknown; all figures are zero then.
type Distance struct {
	Meters float64 `json:"meters"` // rounded to the nearest metre
	Km     float64 `json:"km"`     // rounded to 1 decimal
	Miles  float64 `json:"miles"`  // rounded to 1 decimal
	Valid  bool    `json:"valid"`
}

// GeofenceRadiusMeters is the fixed radius around a shift's coordinates
// within which a worker may check in.
const GeofenceRadiusMeters = 100.0
