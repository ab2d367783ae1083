package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/platform/obs"
	"travel-estimate-service/internal/ports"
)

// ORSGeocoder implements the Geocoder port using OpenRouteService
// (/geocode/search). The first match wins; no-match is reported as
// ports.ErrPlaceNotFound while transport failures propagate as ordinary
// errors after retry/backoff.
//
// The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	country string
}

func NewORSGeocoder(apiKey, country string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		country: country,
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// normalize ensures consistent query text by collapsing whitespace.
func (o *ORSGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve a free-text place name to coordinates using the first match
// returned by the geocoding service.
func (o *ORSGeocoder) Resolve(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Resolve")(&err)

	norm := o.normalize(place)
	if norm == "" {
		return domain.Coordinates{}, errors.New("resolve place: place must be non-empty")
	}

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		if o.country != "" {
			q.Set("boundary.country", o.country)
		}
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: %w", place, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: decode geocode response: %w", place, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: %w", place, ports.ErrPlaceNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: invalid coordinate format", place)
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}
