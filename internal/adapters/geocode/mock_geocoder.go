package geocode

import (
	"context"
	"fmt"

	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/ports"
)

// MockGeocoder resolves places from a fixed table. Unknown places yield
// ErrPlaceNotFound; Err, when set, simulates a service failure for every
// lookup.
type MockGeocoder struct {
	m   map[string]domain.Coordinates
	Err error
}

func NewMockGeocoder(places map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(places))
	for k, v := range places {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Resolve(ctx context.Context, place string) (domain.Coordinates, error) {
	if g.Err != nil {
		return domain.Coordinates{}, g.Err
	}

	c, ok := g.m[place]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: %w", place, ports.ErrPlaceNotFound)
	}
	return c, nil
}
