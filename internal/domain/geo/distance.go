// Package geo holds the great-circle math used to filter and rank stalls
// by distance.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DistanceKm returns the Haversine distance in kilometers between two
// points given in decimal degrees. Inputs are not validated.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Between is DistanceKm for orb points, which store longitude first.
func Between(a, b orb.Point) float64 {
	return DistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// Point builds an orb.Point from latitude and longitude.
func Point(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// MetersToKm converts a distance in meters to kilometers.
func MetersToKm(m float64) float64 {
	return m / 1000
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
