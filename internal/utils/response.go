package utils

import (
	"encoding/json"
	"net/http"

	"PROFILE_EXPLORER_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, errorTitle, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errorTitle, Message: message})
}

// DecodeJSONRequest decodes the body into v, answering 400 on failure.
// Unknown fields are rejected.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
