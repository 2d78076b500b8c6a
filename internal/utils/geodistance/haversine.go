package geodistance

import "math"

const (
	earthRadiusKm = 6371.0
	kmPerMile     = 1.609344
)

// HaversineKm computes the great-circle distance in kilometres between two
// WGS84 coordinates. Used as the deterministic fallback when the road-distance
// provider is unavailable, so geofence and payment logic are never blocked.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RoundMeters rounds a distance in metres to the nearest whole metre.
func RoundMeters(meters float64) float64 {
	return math.Round(meters)
}

// Round1 rounds to 1 decimal place, the display precision for km and miles.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// KmToMiles converts kilometres to miles.
func KmToMiles(km float64) float64 {
	return km / kmPerMile
}
