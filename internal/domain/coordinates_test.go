package domain

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForIdenticalPoints(t *testing.T) {
	points := []Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 35.681236, Lon: 139.767125},
		{Lat: -33.868820, Lon: 151.209290},
	}

	for _, p := range points {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceKmCommutative(t *testing.T) {
	pairs := [][2]Coordinates{
		{{Lat: 35.681236, Lon: 139.767125}, {Lat: 34.702485, Lon: 135.495951}},
		{{Lat: 32.789339, Lon: 130.688636}, {Lat: 34.733198, Lon: 135.500109}},
		{{Lat: -10, Lon: 170}, {Lat: 15, Lon: -175}},
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		if ab != ba {
			t.Errorf("DistanceKm not commutative: %v vs %v", ab, ba)
		}
		if ab <= 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want > 0", p[0], p[1], ab)
		}
	}
}

func TestDistanceKmKnownValues(t *testing.T) {
	// One degree of longitude along the equator.
	oneDegree := earthRadiusKm * math.Pi / 180

	tests := []struct {
		name string
		a, b Coordinates
		want float64
	}{
		{"one degree at equator", Coordinates{0, 0}, Coordinates{0, 1}, oneDegree},
		{"equator to pole", Coordinates{0, 0}, Coordinates{90, 0}, earthRadiusKm * math.Pi / 2},
		{"antipodal", Coordinates{0, 0}, Coordinates{0, 180}, earthRadiusKm * math.Pi},
	}

	for _, tt := range tests {
		got := DistanceKm(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%s: DistanceKm = %v, want %v", tt.name, got, tt.want)
		}
	}
}
