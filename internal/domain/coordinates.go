package domain

import "math"

// Mean earth radius in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the haversine formula on a spherical earth model.
// Commutative; returns 0 for identical points. Coordinates are assumed
// to be in range (lat [-90,90], lon [-180,180]).
func DistanceKm(a, b Coordinates) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180.0 }

	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
