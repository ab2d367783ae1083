package ports

import (
	"context"
	"errors"

	"travel-estimate-service/internal/domain"
)

// ErrPlaceNotFound reports that the geocoding service returned no match
// for a place name. Deliberately distinct from transport failures, which
// surface as ordinary errors.
var ErrPlaceNotFound = errors.New("place not found")

// Port: a boundary for resolving free-text place names to coordinates.
type Geocoder interface {
	// Resolve returns the first matching coordinates for a place name.
	// Returns an error wrapping ErrPlaceNotFound when no match exists.
	Resolve(ctx context.Context, place string) (domain.Coordinates, error)
}
