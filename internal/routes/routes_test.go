package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "PROFILE_EXPLORER_BACK-END/docs"
	"PROFILE_EXPLORER_BACK-END/internal/config"
	"PROFILE_EXPLORER_BACK-END/internal/directory"
	"PROFILE_EXPLORER_BACK-END/internal/dto"
	"PROFILE_EXPLORER_BACK-END/internal/geo"
	"PROFILE_EXPLORER_BACK-END/internal/handlers"
	"PROFILE_EXPLORER_BACK-END/internal/metrics"
	"PROFILE_EXPLORER_BACK-END/internal/middleware"
	"PROFILE_EXPLORER_BACK-END/internal/store"
	"PROFILE_EXPLORER_BACK-END/internal/views"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()
	m := metrics.New()

	st := store.NewMemoryStore(store.SampleProfiles(), store.WithLatency(store.NoLatency{}), store.WithObserver(m))
	dir := directory.NewService(st, store.SampleProfiles(), logger, directory.WithInFlightTracker(m))
	picker := geo.NewPicker(nil, logger)
	roles := middleware.NewRoles(config.SessionConfig{Secret: "test-secret", CookieName: "role"})
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	mux := http.NewServeMux()
	SetupRoutes(mux, roles, Handlers{
		Pages:    handlers.NewPagesHandler(dir, roles, renderer, views.Widget{}, logger),
		Profiles: handlers.NewProfileHandler(dir, st, logger),
		Places:   handlers.NewPlacesHandler(picker, logger),
		Health:   handlers.NewHealthHandler(st, picker.Available),
		Metrics:  m.Handler(),
	})

	srv := httptest.NewServer(middleware.RequestLogger(logger)(mux))
	t.Cleanup(srv.Close)
	return srv
}

func noRedirect() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
}

func adminToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/role", "application/json", strings.NewReader(`{"role":"admin"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.RoleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Token
}

func call(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := noRedirect().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestOperationalRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/healthz", "/livez", "/readyz", "/metrics", "/swagger/doc.json"} {
		resp := call(t, http.MethodGet, srv.URL+path, "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
	assert.NotEmpty(t, call(t, http.MethodGet, srv.URL+"/healthz", "", "").Header.Get("X-Request-ID"))
}

func TestScreensAreGated(t *testing.T) {
	srv := newServer(t)

	resp := call(t, http.MethodGet, srv.URL+"/", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, http.MethodGet, srv.URL+"/home", "", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = call(t, http.MethodGet, srv.URL+"/dashboard/profiles/new", "", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = call(t, http.MethodGet, srv.URL+"/api/profiles", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileLifecycle(t *testing.T) {
	srv := newServer(t)
	token := adminToken(t, srv)

	created := `{"name":"Asha Rao","title":"Analyst","location":"Goa","email":"asha@example.com","phone":"1","description":"D"}`
	resp := call(t, http.MethodPost, srv.URL+"/api/profiles", token, created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body dto.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 5, body.Profile.ID)

	resp = call(t, http.MethodDelete, srv.URL+"/api/profiles/5", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, http.MethodGet, srv.URL+"/api/profiles", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProfileListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, 4, list.Count)

	resp = call(t, http.MethodGet, srv.URL+"/api/profiles/5", token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, http.MethodGet, srv.URL+"/api/places/autocomplete?input=go", token, "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
