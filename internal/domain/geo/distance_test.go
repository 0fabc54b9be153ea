package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{name: "same point", lat1: -23.5505, lon1: -46.6333, lat2: -23.5505, lon2: -46.6333, want: 0, delta: 0},
		{name: "one degree of latitude", lat1: 0, lon1: 0, lat2: 1, lon2: 0, want: 111.195, delta: 0.01},
		{name: "sao paulo to rio", lat1: -23.5505, lon1: -46.6333, lat2: -22.9068, lon2: -43.1729, want: 360.7, delta: 1},
		{name: "antipodal on equator", lat1: 0, lon1: 0, lat2: 0, lon2: 180, want: 20015.09, delta: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{-23.5505, -46.6333},
		{-22.9068, -43.1729},
		{51.5074, -0.1278},
		{35.6762, 139.6503},
		{-33.8688, 151.2093},
		{89.9, 10},
	}

	for _, a := range points {
		for _, b := range points {
			ab := DistanceKm(a[0], a[1], b[0], b[1])
			ba := DistanceKm(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-9)
		}
		assert.Zero(t, DistanceKm(a[0], a[1], a[0], a[1]))
	}
}

func TestBetween_MatchesDistanceKm(t *testing.T) {
	t.Parallel()

	a := Point(-23.5505, -46.6333)
	b := Point(-22.9068, -43.1729)

	assert.InDelta(t, DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729), Between(a, b), 1e-12)
	assert.InDelta(t, -23.5505, a.Lat(), 1e-12)
	assert.InDelta(t, -46.6333, a.Lon(), 1e-12)
}

func TestMetersToKm(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, MetersToKm(500), 1e-12)
	assert.Zero(t, MetersToKm(0))
}
