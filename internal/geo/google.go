package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// GooglePlaces is the Places adapter backed by the Google Maps Places API.
type GooglePlaces struct {
	client *maps.Client
}

// NewGooglePlaces creates a client authenticated with apiKey.
func NewGooglePlaces(apiKey string) (*GooglePlaces, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GooglePlaces{client: c}, nil
}

// Autocomplete asks for geocode predictions only.
func (g *GooglePlaces) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	resp, err := g.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: input,
		Types: maps.AutocompletePlaceTypeGeocode,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, Prediction{PlaceID: p.PlaceID, Description: p.Description})
	}
	return out, nil
}

// Details resolves a place id to its address and location.
func (g *GooglePlaces) Details(ctx context.Context, placeID string) (Place, error) {
	res, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: placeID})
	if err != nil {
		return Place{}, err
	}
	loc := res.Geometry.Location
	return Place{
		FormattedAddress: res.FormattedAddress,
		Coordinates:      models.Coordinates{Lat: loc.Lat, Lng: loc.Lng},
		HasGeometry:      loc != (maps.LatLng{}),
	}, nil
}
