// Package geo turns place search results into a location label and
// coordinates for a profile.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

var (
	// ErrUnavailable means no place search backend is configured.
	ErrUnavailable = errors.New("location autocomplete unavailable")
	// ErrIncompletePlace means the place has no address or no geometry.
	ErrIncompletePlace = errors.New("place has no formatted address or geometry")
)

// Prediction is one autocomplete suggestion.
type Prediction struct {
	PlaceID     string
	Description string
}

// Place is a resolved place.
type Place struct {
	FormattedAddress string
	Coordinates      models.Coordinates
	HasGeometry      bool
}

// Places is the external place search capability.
type Places interface {
	Autocomplete(ctx context.Context, input string) ([]Prediction, error)
	Details(ctx context.Context, placeID string) (Place, error)
}

// Selection is what the picker emits for a chosen place.
type Selection struct {
	Location    string             `json:"location"`
	Coordinates models.Coordinates `json:"coordinates"`
}

// Listener receives selections.
type Listener func(Selection)

// Picker bridges free-text location entry to a Places backend. Without a
// backend it degrades to plain text: no suggestions and no selections.
type Picker struct {
	places Places
	logger zerolog.Logger

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// NewPicker creates a picker. places may be nil.
func NewPicker(places Places, logger zerolog.Logger) *Picker {
	return &Picker{
		places:    places,
		logger:    logger.With().Str("component", "location_picker").Logger(),
		listeners: make(map[int]Listener),
	}
}

// Available reports whether autocomplete is backed by a Places service.
func (p *Picker) Available() bool {
	return p.places != nil
}

// Attach subscribes l to selections. The returned function detaches it and
// is safe to call more than once.
func (p *Picker) Attach(l Listener) (detach func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = l
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// Listeners reports how many listeners are attached.
func (p *Picker) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

// Suggest returns predictions for input. A degraded picker returns none.
func (p *Picker) Suggest(ctx context.Context, input string) ([]Prediction, error) {
	input = strings.TrimSpace(input)
	if !p.Available() || input == "" {
		return []Prediction{}, nil
	}
	preds, err := p.places.Autocomplete(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", input, err)
	}
	return preds, nil
}

// Select resolves placeID and emits the selection to every listener.
func (p *Picker) Select(ctx context.Context, placeID string) (Selection, error) {
	if !p.Available() {
		return Selection{}, ErrUnavailable
	}
	place, err := p.places.Details(ctx, placeID)
	if err != nil {
		return Selection{}, fmt.Errorf("place details %s: %w", placeID, err)
	}
	if !place.HasGeometry || place.FormattedAddress == "" {
		return Selection{}, ErrIncompletePlace
	}
	sel := Selection{Location: place.FormattedAddress, Coordinates: place.Coordinates}

	p.mu.Lock()
	listeners := make([]Listener, 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()

	for _, l := range listeners {
		l(sel)
	}
	p.logger.Debug().Str("place_id", placeID).Str("location", sel.Location).Msg("place selected")
	return sel, nil
}

// ApplySelection sets the location on p. Coordinates are replaced only when
// given; otherwise the previous ones are kept.
func ApplySelection(p models.Profile, location string, coords *models.Coordinates) models.Profile {
	out := p.Clone()
	out.Location = location
	if coords != nil {
		c := *coords
		out.Coordinates = &c
	}
	return out
}
