package geodistance_test

import (
	"testing"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/utils/geodistance"
	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, geodistance.HaversineKm(51.5, -0.1, 51.5, -0.1))
}

func TestHaversineKm_ShortRange(t *testing.T) {
	// ~10m apart, well inside a 100m geofence.
	km := geodistance.HaversineKm(51.500, -0.100, 51.50009, -0.10001)
	meters := km * 1000
	assert.InDelta(t, 10.0, meters, 2.0)
	assert.Less(t, meters, 100.0)
}

func TestHaversineKm_OutsideGeofence(t *testing.T) {
	// ~1.1km apart.
	km := geodistance.HaversineKm(51.500, -0.100, 51.510, -0.100)
	assert.InDelta(t, 1.11, km, 0.02)
	assert.Greater(t, km*1000, 100.0)
}

func TestHaversineKm_LondonToParis(t *testing.T) {
	km := geodistance.HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, km, 5)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 11.0, geodistance.RoundMeters(11.31))
	assert.Equal(t, 12.0, geodistance.RoundMeters(11.5))
	assert.Equal(t, 1.1, geodistance.Round1(1.1099))
	assert.Equal(t, 0.7, geodistance.Round1(geodistance.KmToMiles(1.11)))
}
