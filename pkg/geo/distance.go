// Package geo provides great-circle distance between latitude/longitude
// points. The persistent store computes distances on the spheroid; this
// haversine version backs the in-memory repository and tests, where the
// few-meter difference does not matter.
package geo

import "math"

const earthRadiusMeters = 6371000.0

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func hav(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// DistanceMeters returns the haversine distance in meters between two
// (latitude, longitude) pairs given in degrees.
func DistanceMeters(latOne, lonOne, latTwo, lonTwo float64) float64 {
	latOneRad := degToRad(latOne)
	latTwoRad := degToRad(latTwo)

	h := hav(latOneRad-latTwoRad) + math.Cos(latOneRad)*math.Cos(latTwoRad)*hav(degToRad(lonOne-lonTwo))
	centralAngleRad := 2.0 * math.Asin(math.Sqrt(h))
	return earthRadiusMeters * centralAngleRad
}
