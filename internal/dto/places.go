package dto

import "PROFILE_EXPLORER_BACK-END/internal/models"

// PlaceSuggestion is one autocomplete prediction
type PlaceSuggestion struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// PlaceSuggestionsResponse lists predictions for an input
type PlaceSuggestionsResponse struct {
	Suggestions []PlaceSuggestion `json:"suggestions"`
}

// PlaceSelectionResponse is what the location picker emits on selection
type PlaceSelectionResponse struct {
	Location    string             `json:"location"`
	Coordinates models.Coordinates `json:"coordinates"`
}
