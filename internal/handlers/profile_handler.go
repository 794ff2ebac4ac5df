package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/directory"
	"PROFILE_EXPLORER_BACK-END/internal/dto"
	"PROFILE_EXPLORER_BACK-END/internal/middleware"
	"PROFILE_EXPLORER_BACK-END/internal/models"
	"PROFILE_EXPLORER_BACK-END/internal/store"
	"PROFILE_EXPLORER_BACK-END/internal/utils"
	"PROFILE_EXPLORER_BACK-END/internal/views"
)

const profilesPath = "/api/profiles/"

// ProfileHandler serves the profile collection as JSON
type ProfileHandler struct {
	dir    *directory.Service
	store  store.Store
	logger zerolog.Logger
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(dir *directory.Service, st store.Store, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		dir:    dir,
		store:  st,
		logger: logger.With().Str("component", "profile_api").Logger(),
	}
}

// Profiles dispatches /api/profiles and /api/profiles/{id}
func (h *ProfileHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	hasID := strings.HasPrefix(r.URL.Path, profilesPath) && len(r.URL.Path) > len(profilesPath)

	switch r.Method {
	case http.MethodGet:
		if hasID {
			h.GetProfile(w, r)
			return
		}
		h.ListProfiles(w, r)
	case http.MethodPost:
		if hasID {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "use PUT or PATCH to update a profile")
			return
		}
		h.CreateProfile(w, r)
	case http.MethodPut, http.MethodPatch:
		h.UpdateProfile(w, r)
	case http.MethodDelete:
		h.DeleteProfile(w, r)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET, POST, PUT, PATCH, DELETE are allowed")
	}
}

// ListProfiles godoc
// @Summary      List profiles
// @Description  Refreshes the directory and returns every profile. A failed fetch returns an empty list with the error message.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profiles [get]
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	list := h.dir.Refresh(r.Context())
	state := h.dir.Snapshot()
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileListResponse{
		Profiles: list,
		Count:    len(list),
		Error:    state.Error,
	})
}

// GetProfile godoc
// @Summary      Get a profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDFromPath(w, r)
	if !ok {
		return
	}
	p, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{Profile: p})
}

// CreateProfile godoc
// @Summary      Create a profile
// @Description  Admin only. The store assigns the id.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileCreateRequest  true  "Profile payload"
// @Success      201      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ValidationErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	var req dto.ProfileCreateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	p := req.ToProfile()
	if p.Photo == "" {
		p.Photo = views.NewProfileForm().Photo
	}
	if err := views.ValidateCreate(p); err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := h.dir.Create(r.Context(), p)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.ProfileResponse{
		Profile: created,
		Message: "Profile created successfully",
	})
}

// UpdateProfile godoc
// @Summary      Update a profile
// @Description  Admin only. Only the provided fields change; the id never does.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                       true  "Profile ID"
// @Param        payload  body      dto.ProfileUpdateRequest  true  "Fields to change"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ValidationErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [put]
// @Router       /api/profiles/{id} [patch]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := profileIDFromPath(w, r)
	if !ok {
		return
	}
	var req dto.ProfileUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := views.ValidatePatch(req); err != nil {
		writeValidationError(w, err)
		return
	}

	updated, err := h.dir.Update(r.Context(), id, req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{
		Profile: updated,
		Message: "Profile updated successfully",
	})
}

// DeleteProfile godoc
// @Summary      Delete a profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := profileIDFromPath(w, r)
	if !ok {
		return
	}
	if err := h.dir.Remove(r.Context(), id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Profile deleted successfully",
	})
}

// DirectoryState godoc
// @Summary      Directory state
// @Description  The list, loading flag and last error as the screens see them, without refreshing.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  directory.State
// @Router       /api/directory/state [get]
func (h *ProfileHandler) DirectoryState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET is allowed")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, h.dir.Snapshot())
}

func (h *ProfileHandler) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Request Abandoned", err.Error())
	default:
		h.logger.Error().Err(err).Msg("profile store call failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *views.ValidationError
	if errors.As(err, &verr) {
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: verr.Fields,
		})
		return
	}
	utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if middleware.RoleFromContext(r.Context()) != models.RoleAdmin {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "admin role required")
		return false
	}
	return true
}

func profileIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := strings.Trim(strings.TrimPrefix(r.URL.Path, profilesPath), "/")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", "invalid profile id")
		return 0, false
	}
	return id, true
}
