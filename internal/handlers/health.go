package handlers

import (
	"context"
	"net/http"
	"time"

	"PROFILE_EXPLORER_BACK-END/internal/dto"
	"PROFILE_EXPLORER_BACK-END/internal/utils"
)

// ReadinessProbe reports whether the profile store can be reached
type ReadinessProbe interface {
	Ready(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	store  ReadinessProbe
	places func() bool
}

// NewHealthHandler creates a new HealthHandler instance. places reports
// whether location autocomplete is backed by a Places service.
func NewHealthHandler(store ReadinessProbe, places func() bool) *HealthHandler {
	return &HealthHandler{store: store, places: places}
}

// HealthCheck handles basic health check
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check. A missing Places backend is
// reported but does not make the service unready.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	places := "unavailable"
	if h.places() {
		places = "ok"
	}

	if err := h.store.Ready(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"store": err.Error(), "places": places},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"store": "ok", "places": places},
	})
}
