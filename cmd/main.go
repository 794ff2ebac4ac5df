// @title Profile Explorer API
// @version 1.0
// @description Profile directory with map locations and an admin editor

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Role token from POST /role, as "Bearer <token>".

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "PROFILE_EXPLORER_BACK-END/docs" // This is required for swagger
	"PROFILE_EXPLORER_BACK-END/internal/config"
	"PROFILE_EXPLORER_BACK-END/internal/directory"
	"PROFILE_EXPLORER_BACK-END/internal/geo"
	"PROFILE_EXPLORER_BACK-END/internal/handlers"
	"PROFILE_EXPLORER_BACK-END/internal/metrics"
	"PROFILE_EXPLORER_BACK-END/internal/middleware"
	"PROFILE_EXPLORER_BACK-END/internal/routes"
	"PROFILE_EXPLORER_BACK-END/internal/store"
	"PROFILE_EXPLORER_BACK-END/internal/views"
)

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.Log)
	log.Logger = logger

	// --- Profile store + directory ---
	m := metrics.New()

	ids, err := store.ParseIDScheme(cfg.Store.IDScheme)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid id scheme")
	}
	profileStore := store.NewMemoryStore(store.SampleProfiles(),
		store.WithLatency(store.SimulatedLatency{List: cfg.Store.ListDelay, Other: cfg.Store.OpDelay}),
		store.WithIDScheme(ids),
		store.WithObserver(m),
	)
	dir := directory.NewService(profileStore, store.SampleProfiles(), logger, directory.WithInFlightTracker(m))

	// --- Location picker ---
	var places geo.Places
	if cfg.IsMapsConfigured() {
		gp, err := geo.NewGooglePlaces(cfg.Maps.APIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("places client unavailable, location entry is plain text")
		} else {
			places = gp
		}
	}
	picker := geo.NewPicker(places, logger)
	detach := picker.Attach(func(sel geo.Selection) {
		logger.Debug().Str("location", sel.Location).
			Float64("lat", sel.Coordinates.Lat).
			Float64("lng", sel.Coordinates.Lng).
			Msg("location picked")
	})
	defer detach()

	// --- HTTP Handlers ---
	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}
	roles := middleware.NewRoles(cfg.Session)
	widget := views.Widget{APIKey: cfg.Maps.APIKey, PlacesAvailable: picker.Available()}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, roles, routes.Handlers{
		Pages:    handlers.NewPagesHandler(dir, roles, renderer, widget, logger),
		Profiles: handlers.NewProfileHandler(dir, profileStore, logger),
		Places:   handlers.NewPlacesHandler(picker, logger),
		Health:   handlers.NewHealthHandler(profileStore, picker.Available),
		Metrics:  m.Handler(),
	})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := middleware.RequestLogger(logger)(c.Handler(mux))

	// --- HTTP server + graceful shutdown ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).
			Bool("maps", cfg.IsMapsConfigured()).
			Str("id_scheme", cfg.Store.IDScheme).
			Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
