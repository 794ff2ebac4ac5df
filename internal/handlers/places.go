package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/dto"
	"PROFILE_EXPLORER_BACK-END/internal/geo"
	"PROFILE_EXPLORER_BACK-END/internal/utils"
)

const placesPath = "/api/places/"

// PlacesHandler exposes the location picker to the admin form
type PlacesHandler struct {
	picker *geo.Picker
	logger zerolog.Logger
}

// NewPlacesHandler creates a new PlacesHandler instance
func NewPlacesHandler(picker *geo.Picker, logger zerolog.Logger) *PlacesHandler {
	return &PlacesHandler{picker: picker, logger: logger.With().Str("component", "places_api").Logger()}
}

// Places dispatches /api/places/autocomplete and /api/places/{placeID}
func (h *PlacesHandler) Places(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET is allowed")
		return
	}
	if !h.picker.Available() {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Service Unavailable", geo.ErrUnavailable.Error())
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, placesPath), "/")
	switch rest {
	case "":
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "place id required")
	case "autocomplete":
		h.Autocomplete(w, r)
	default:
		h.Select(w, r, rest)
	}
}

// Autocomplete godoc
// @Summary      Location suggestions
// @Description  Geocode-type predictions for free-text input. 503 when no Maps key is configured.
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        input  query     string  true  "Partial address"
// @Success      200    {object}  dto.PlaceSuggestionsResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Router       /api/places/autocomplete [get]
func (h *PlacesHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	preds, err := h.picker.Suggest(r.Context(), r.URL.Query().Get("input"))
	if err != nil {
		h.logger.Warn().Err(err).Msg("autocomplete failed")
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Bad Gateway", err.Error())
		return
	}
	resp := dto.PlaceSuggestionsResponse{Suggestions: make([]dto.PlaceSuggestion, 0, len(preds))}
	for _, p := range preds {
		resp.Suggestions = append(resp.Suggestions, dto.PlaceSuggestion{PlaceID: p.PlaceID, Description: p.Description})
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Select godoc
// @Summary      Resolve a place
// @Description  Returns the formatted address and coordinates of a suggestion. 422 when the place has no geometry.
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        placeID  path      string  true  "Place ID"
// @Success      200      {object}  dto.PlaceSelectionResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/places/{placeID} [get]
func (h *PlacesHandler) Select(w http.ResponseWriter, r *http.Request, placeID string) {
	sel, err := h.picker.Select(r.Context(), placeID)
	switch {
	case err == nil:
		utils.WriteJSONResponse(w, http.StatusOK, dto.PlaceSelectionResponse{
			Location:    sel.Location,
			Coordinates: sel.Coordinates,
		})
	case errors.Is(err, geo.ErrIncompletePlace):
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Unprocessable Entity", err.Error())
	case errors.Is(err, geo.ErrUnavailable):
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Service Unavailable", err.Error())
	default:
		h.logger.Warn().Err(err).Str("place_id", placeID).Msg("place details failed")
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Bad Gateway", err.Error())
	}
}
