package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

type fakePlaces struct {
	preds  []Prediction
	places map[string]Place
	err    error
}

func (f fakePlaces) Autocomplete(context.Context, string) ([]Prediction, error) {
	return f.preds, f.err
}

func (f fakePlaces) Details(_ context.Context, id string) (Place, error) {
	if f.err != nil {
		return Place{}, f.err
	}
	p, ok := f.places[id]
	if !ok {
		return Place{}, errors.New("NOT_FOUND")
	}
	return p, nil
}

func newFake() fakePlaces {
	return fakePlaces{
		preds: []Prediction{{PlaceID: "pune", Description: "Pune, Maharashtra, India"}},
		places: map[string]Place{
			"pune": {
				FormattedAddress: "Pune, Maharashtra, India",
				Coordinates:      models.Coordinates{Lat: 18.5204, Lng: 73.8567},
				HasGeometry:      true,
			},
			"nowhere": {FormattedAddress: "Nowhere"},
		},
	}
}

func TestSelectEmitsToAttachedListeners(t *testing.T) {
	p := NewPicker(newFake(), zerolog.Nop())
	var got []Selection
	detach := p.Attach(func(s Selection) { got = append(got, s) })

	sel, err := p.Select(context.Background(), "pune")
	require.NoError(t, err)
	want := Selection{Location: "Pune, Maharashtra, India", Coordinates: models.Coordinates{Lat: 18.5204, Lng: 73.8567}}
	assert.Equal(t, want, sel)
	assert.Equal(t, []Selection{want}, got)

	detach()
	detach()
	assert.Equal(t, 0, p.Listeners())
	_, err = p.Select(context.Background(), "pune")
	require.NoError(t, err)
	assert.Len(t, got, 1, "detached listener must not be called")
}

func TestSelectIgnoresPlacesWithoutGeometry(t *testing.T) {
	p := NewPicker(newFake(), zerolog.Nop())
	called := false
	defer p.Attach(func(Selection) { called = true })()

	_, err := p.Select(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrIncompletePlace)
	assert.False(t, called)
}

func TestDegradedPicker(t *testing.T) {
	p := NewPicker(nil, zerolog.Nop())
	assert.False(t, p.Available())

	preds, err := p.Suggest(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Empty(t, preds)

	called := false
	p.Attach(func(Selection) { called = true })
	_, err = p.Select(context.Background(), "pune")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, called)
}

func TestSuggest(t *testing.T) {
	p := NewPicker(newFake(), zerolog.Nop())
	preds, err := p.Suggest(context.Background(), " Pun ")
	require.NoError(t, err)
	assert.Len(t, preds, 1)

	preds, err = p.Suggest(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, preds)

	failing := NewPicker(fakePlaces{err: errors.New("OVER_QUERY_LIMIT")}, zerolog.Nop())
	_, err = failing.Suggest(context.Background(), "Pune")
	assert.Error(t, err)
}

func TestApplySelectionKeepsCoordinatesWhenMissing(t *testing.T) {
	prev := models.Profile{Location: "old", Coordinates: &models.Coordinates{Lat: 1, Lng: 2}}

	kept := ApplySelection(prev, "typed text", nil)
	assert.Equal(t, "typed text", kept.Location)
	assert.Equal(t, &models.Coordinates{Lat: 1, Lng: 2}, kept.Coordinates)

	moved := ApplySelection(prev, "Pune", &models.Coordinates{Lat: 18.5, Lng: 73.8})
	assert.Equal(t, 18.5, moved.Coordinates.Lat)
	assert.Equal(t, "old", prev.Location)
}

func TestNewGooglePlacesNeedsKey(t *testing.T) {
	_, err := NewGooglePlaces("")
	assert.ErrorIs(t, err, ErrUnavailable)
}
