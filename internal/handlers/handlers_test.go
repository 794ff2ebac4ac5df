package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"PROFILE_EXPLORER_BACK-END/internal/config"
	"PROFILE_EXPLORER_BACK-END/internal/directory"
	"PROFILE_EXPLORER_BACK-END/internal/geo"
	"PROFILE_EXPLORER_BACK-END/internal/middleware"
	"PROFILE_EXPLORER_BACK-END/internal/models"
	"PROFILE_EXPLORER_BACK-END/internal/store"
	"PROFILE_EXPLORER_BACK-END/internal/views"
)

type countingObserver struct {
	mu    sync.Mutex
	calls map[store.Op]int
}

func (o *countingObserver) ObserveOp(op store.Op, _ time.Duration, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls[op]++
}

func (o *countingObserver) count(op store.Op) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[op]
}

// failingStore serves reads from the seed but rejects every List.
type failingStore struct {
	*store.MemoryStore
}

func (failingStore) List(context.Context) ([]models.Profile, error) {
	return nil, errors.New("backend down")
}

type fakePlaces struct {
	preds  []geo.Prediction
	places map[string]geo.Place
}

func (f fakePlaces) Autocomplete(_ context.Context, input string) ([]geo.Prediction, error) {
	return f.preds, nil
}

func (f fakePlaces) Details(_ context.Context, placeID string) (geo.Place, error) {
	p, ok := f.places[placeID]
	if !ok {
		return geo.Place{}, errors.New("unknown place")
	}
	return p, nil
}

type testEnv struct {
	store    *store.MemoryStore
	observer *countingObserver
	dir      *directory.Service
	roles    *middleware.Roles
	picker   *geo.Picker
	pages    *PagesHandler
	profiles *ProfileHandler
	places   *PlacesHandler
}

func newTestEnv(t *testing.T, places geo.Places) *testEnv {
	t.Helper()
	obs := &countingObserver{calls: map[store.Op]int{}}
	st := store.NewMemoryStore(store.SampleProfiles(), store.WithLatency(store.NoLatency{}), store.WithObserver(obs))
	return newTestEnvWithStore(t, st, st, obs, places)
}

func newTestEnvWithStore(t *testing.T, mem *store.MemoryStore, st store.Store, obs *countingObserver, places geo.Places) *testEnv {
	t.Helper()
	logger := zerolog.Nop()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	dir := directory.NewService(st, store.SampleProfiles(), logger)
	roles := middleware.NewRoles(config.SessionConfig{Secret: "test-secret", CookieName: "role"})
	picker := geo.NewPicker(places, logger)
	widget := views.Widget{PlacesAvailable: picker.Available()}

	return &testEnv{
		store:    mem,
		observer: obs,
		dir:      dir,
		roles:    roles,
		picker:   picker,
		pages:    NewPagesHandler(dir, roles, renderer, widget, logger),
		profiles: NewProfileHandler(dir, st, logger),
		places:   NewPlacesHandler(picker, logger),
	}
}

func (e *testEnv) token(t *testing.T, role models.Role) string {
	t.Helper()
	tok, err := e.roles.GenerateToken(role)
	require.NoError(t, err)
	return tok
}

// api runs a JSON request through the same role guard the router uses.
func (e *testEnv) api(t *testing.T, h http.HandlerFunc, role models.Role, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if role != models.RoleNone {
		req.Header.Set("Authorization", "Bearer "+e.token(t, role))
	}
	rec := httptest.NewRecorder()
	e.roles.RequireAPIRole(h, models.RoleUser, models.RoleAdmin)(rec, req)
	return rec
}

// page runs a browser request with the role cookie set.
func (e *testEnv) page(t *testing.T, h http.HandlerFunc, required, role models.Role, method, target string, form string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if form != "" {
		r = strings.NewReader(form)
	}
	req := httptest.NewRequest(method, target, r)
	if form != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if role != models.RoleNone {
		req.AddCookie(&http.Cookie{Name: "role", Value: e.token(t, role)})
	}
	rec := httptest.NewRecorder()
	e.roles.RequireRole(required, h)(rec, req)
	return rec
}
