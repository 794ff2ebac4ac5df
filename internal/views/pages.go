package views

import (
	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/directory"
	"PROFILE_EXPLORER_BACK-END/internal/mapview"
	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// Widget holds what pages need to load the browser map script.
type Widget struct {
	APIKey          string
	PlacesAvailable bool
}

// Available reports whether the map script can be loaded at all.
func (w Widget) Available() bool {
	return w.APIKey != ""
}

// EntryPage is the role selection screen.
type EntryPage struct {
	Role models.Role
}

// DirectoryPage is the read-only screen.
type DirectoryPage struct {
	Role     models.Role
	Query    string
	State    directory.State
	Profiles []models.Profile
	Selected *models.Profile
	Map      *mapview.Scene
	Widget   Widget
}

// NewDirectoryPage filters state by query and focuses the map on selectedID
// when it names a listed profile.
func NewDirectoryPage(role models.Role, state directory.State, query string, selectedID int, w Widget) DirectoryPage {
	page := DirectoryPage{
		Role:     role,
		Query:    query,
		State:    state,
		Profiles: FilterDirectory(state.Profiles, query),
		Selected: FindByID(state.Profiles, selectedID),
		Map:      mapview.NewScene(w.Available()),
		Widget:   w,
	}
	mapview.DirectoryMap(page.Map, page.Selected)
	return page
}

// AdminPage is the management screen. Form is nil unless editing.
type AdminPage struct {
	Role       models.Role
	Query      string
	State      directory.State
	Profiles   []models.Profile
	Selected   *models.Profile
	Map        *mapview.Scene
	Widget     Widget
	Form       *ProfileForm
	FormErrors map[string]string
}

// Editing reports whether the edit form replaces the map.
func (p AdminPage) Editing() bool {
	return p.Form != nil
}

// NewAdminPage filters state by query and plots every profile.
func NewAdminPage(role models.Role, state directory.State, query string, selectedID int, w Widget, logger zerolog.Logger) AdminPage {
	page := AdminPage{
		Role:       role,
		Query:      query,
		State:      state,
		Profiles:   FilterAdmin(state.Profiles, query),
		Selected:   FindByID(state.Profiles, selectedID),
		Map:        mapview.NewScene(w.Available()),
		Widget:     w,
		FormErrors: map[string]string{},
	}
	mapview.AdminMap(page.Map, state.Profiles, page.Selected, logger)
	return page
}

// WithForm opens the edit form, optionally with validation messages.
func (p AdminPage) WithForm(f ProfileForm, errs map[string]string) AdminPage {
	p.Form = &f
	if errs == nil {
		errs = map[string]string{}
	}
	p.FormErrors = errs
	return p
}
