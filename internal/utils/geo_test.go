package utils

import (
	"testing"

	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	b := models.Location{Latitude: 34.0522, Longitude: -118.2437}

	assert.Equal(t, CalculateDistance(a, b), CalculateDistance(b, a))
}

func TestCalculateDistance_ZeroForSamePoint(t *testing.T) {
	a := models.Location{Latitude: 40.7128, Longitude: -74.0060}

	assert.Equal(t, 0.0, CalculateDistance(a, a))
}

func TestCalculateDistance_KnownDistances(t *testing.T) {
	// New York to Los Angeles is roughly 3936 km great-circle.
	nyc := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	la := models.Location{Latitude: 34.0522, Longitude: -118.2437}
	assert.InDelta(t, 3936.0, CalculateDistance(nyc, la), 20.0)

	// Two points ~150m apart in lower Manhattan.
	origin := models.Location{Latitude: 40.7138, Longitude: -74.0070}
	tech := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	d := CalculateDistance(origin, tech)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 1.0)
}

func TestEncodeDecodeGeohash(t *testing.T) {
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.01)
	assert.InDelta(t, loc.Longitude, lng, 0.01)
}
