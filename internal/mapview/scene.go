// Package mapview describes what the map widget should draw. The widget runs
// in the browser; Scene records the calls so the page script can replay them.
package mapview

import (
	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// Marker is a pin on the map.
type Marker struct {
	ProfileID int                `json:"profile_id"`
	Position  models.Coordinates `json:"position"`
	Title     string             `json:"title"`
}

// Overlay is an info window anchored to a position.
type Overlay struct {
	ProfileID int                `json:"profile_id"`
	Position  models.Coordinates `json:"position"`
	Name      string             `json:"name"`
	Location  string             `json:"location"`
	Photo     string             `json:"photo"`
}

// Widget is the narrow capability the screens need from a map.
type Widget interface {
	RenderMap(center models.Coordinates, zoom int)
	PlaceMarker(m Marker)
	ShowOverlay(o Overlay)
}

// Scene is a Widget that records its calls as a JSON document.
type Scene struct {
	Available bool               `json:"available"`
	Center    models.Coordinates `json:"center"`
	Zoom      int                `json:"zoom"`
	Markers   []Marker           `json:"markers"`
	Overlay   *Overlay           `json:"overlay,omitempty"`
}

// NewScene creates an empty scene. available is false when the widget script
// cannot be loaded, in which case the page renders without a map.
func NewScene(available bool) *Scene {
	return &Scene{Available: available, Markers: []Marker{}}
}

func (s *Scene) RenderMap(center models.Coordinates, zoom int) {
	s.Center = center
	s.Zoom = zoom
}

func (s *Scene) PlaceMarker(m Marker) {
	s.Markers = append(s.Markers, m)
}

func (s *Scene) ShowOverlay(o Overlay) {
	s.Overlay = &o
}

const (
	overviewZoom = 3
	focusZoom    = 12
)

// DirectoryMap draws the read-only map: focused on the selected profile when
// there is one with valid coordinates, otherwise a world overview.
func DirectoryMap(w Widget, selected *models.Profile) {
	if selected == nil || !selected.HasValidCoordinates() {
		w.RenderMap(models.Coordinates{Lat: 0, Lng: 0}, overviewZoom)
		return
	}
	w.RenderMap(*selected.Coordinates, focusZoom)
	w.PlaceMarker(Marker{ProfileID: selected.ID, Position: *selected.Coordinates, Title: selected.Name})
}

// AdminMap draws every profile with valid coordinates and an info overlay
// for the selected one. Profiles with bad coordinates are skipped.
func AdminMap(w Widget, profiles []models.Profile, selected *models.Profile, logger zerolog.Logger) {
	w.RenderMap(models.Coordinates{Lat: 20, Lng: 0}, overviewZoom)
	for _, p := range profiles {
		if !p.HasValidCoordinates() {
			logger.Warn().Int("profile_id", p.ID).Msg("invalid coordinates for profile")
			continue
		}
		w.PlaceMarker(Marker{ProfileID: p.ID, Position: *p.Coordinates, Title: p.Name})
	}
	if selected != nil && selected.HasValidCoordinates() {
		w.ShowOverlay(Overlay{
			ProfileID: selected.ID,
			Position:  *selected.Coordinates,
			Name:      selected.Name,
			Location:  selected.Location,
			Photo:     selected.Photo,
		})
	}
}
