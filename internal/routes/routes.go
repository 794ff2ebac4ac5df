package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"PROFILE_EXPLORER_BACK-END/internal/handlers"
	"PROFILE_EXPLORER_BACK-END/internal/middleware"
	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// Handlers groups everything SetupRoutes mounts
type Handlers struct {
	Pages    *handlers.PagesHandler
	Profiles *handlers.ProfileHandler
	Places   *handlers.PlacesHandler
	Health   *handlers.HealthHandler
	Metrics  http.Handler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, roles *middleware.Roles, h Handlers) {
	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)
	mux.Handle("/metrics", h.Metrics)

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Role selection
	mux.HandleFunc("/role", h.Pages.SelectRole)
	mux.HandleFunc("/role/clear", h.Pages.ClearRole)

	// Screens
	mux.HandleFunc("/home", roles.RequireRole(models.RoleUser, h.Pages.Home))
	mux.HandleFunc("/dashboard", roles.RequireRole(models.RoleAdmin, h.Pages.Dashboard))
	mux.HandleFunc("/dashboard/", roles.RequireRole(models.RoleAdmin, h.Pages.Dashboard))

	// Profile API
	mux.HandleFunc("/api/profiles", roles.RequireAPIRole(h.Profiles.Profiles, models.RoleUser, models.RoleAdmin))
	mux.HandleFunc("/api/profiles/", roles.RequireAPIRole(h.Profiles.Profiles, models.RoleUser, models.RoleAdmin))
	mux.HandleFunc("/api/directory/state", roles.RequireAPIRole(h.Profiles.DirectoryState, models.RoleUser, models.RoleAdmin))

	// Location picker API
	mux.HandleFunc("/api/places/", roles.RequireAPIRole(h.Places.Places, models.RoleAdmin))

	// Root route
	mux.Handle("/", roles.WithRole(http.HandlerFunc(h.Pages.Entry)))
}
