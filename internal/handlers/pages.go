package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/directory"
	"PROFILE_EXPLORER_BACK-END/internal/dto"
	"PROFILE_EXPLORER_BACK-END/internal/middleware"
	"PROFILE_EXPLORER_BACK-END/internal/models"
	"PROFILE_EXPLORER_BACK-END/internal/session"
	"PROFILE_EXPLORER_BACK-END/internal/store"
	"PROFILE_EXPLORER_BACK-END/internal/utils"
	"PROFILE_EXPLORER_BACK-END/internal/views"
)

// PagesHandler renders the entry, directory and admin screens
type PagesHandler struct {
	dir      *directory.Service
	roles    *middleware.Roles
	renderer *views.Renderer
	widget   views.Widget
	logger   zerolog.Logger
}

// NewPagesHandler creates a new PagesHandler instance
func NewPagesHandler(dir *directory.Service, roles *middleware.Roles, renderer *views.Renderer, widget views.Widget, logger zerolog.Logger) *PagesHandler {
	return &PagesHandler{
		dir:      dir,
		roles:    roles,
		renderer: renderer,
		widget:   widget,
		logger:   logger.With().Str("component", "pages").Logger(),
	}
}

// Entry renders the role selection screen
func (h *PagesHandler) Entry(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != session.EntryPath {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	h.render(w, views.PageEntry, views.EntryPage{Role: middleware.RoleFromContext(r.Context())}, http.StatusOK)
}

// SelectRole godoc
// @Summary      Select a role
// @Description  Form posts get a role cookie and a redirect to the role's home. JSON posts get the signed token for use as a Bearer header.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.RoleRequest  true  "Role (user or admin)"
// @Success      200      {object}  dto.RoleResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /role [post]
func (h *PagesHandler) SelectRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return
	}

	wantsJSON := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
	var raw string
	if wantsJSON {
		var req dto.RoleRequest
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return
		}
		raw = req.Role
	} else {
		raw = r.FormValue("role")
	}

	role, err := models.ParseRole(raw)
	if err != nil {
		if wantsJSON {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", err.Error())
		} else {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	if wantsJSON {
		token, err := h.roles.GenerateToken(role)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "failed to sign role token")
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, dto.RoleResponse{
			Role:  string(role),
			Token: token,
			Home:  session.HomeFor(role),
		})
		return
	}

	if err := h.roles.SetCookie(w, role); err != nil {
		h.logger.Error().Err(err).Msg("failed to sign role token")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.logger.Info().Str("role", string(role)).Msg("role selected")
	http.Redirect(w, r, session.HomeFor(role), http.StatusSeeOther)
}

// ClearRole resets the visitor to no role
func (h *PagesHandler) ClearRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	h.roles.ClearCookie(w)
	http.Redirect(w, r, session.EntryPath, http.StatusSeeOther)
}

// Home renders the read-only directory
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	h.dir.Refresh(r.Context())
	q := r.URL.Query()
	page := views.NewDirectoryPage(
		middleware.RoleFromContext(r.Context()),
		h.dir.Snapshot(),
		q.Get("q"),
		atoiOrZero(q.Get("selected")),
		h.widget,
	)
	h.render(w, views.PageDirectory, page, http.StatusOK)
}

// Dashboard dispatches /dashboard and /dashboard/profiles/...
func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, session.AdminHomePath), "/")
	parts := strings.Split(rest, "/")

	switch {
	case rest == "":
		if !allowMethod(w, r, http.MethodGet) {
			return
		}
		h.renderAdmin(w, r, nil, nil, true, http.StatusOK)

	case rest == "profiles/new":
		if !allowMethod(w, r, http.MethodGet) {
			return
		}
		form := views.NewProfileForm()
		h.renderAdmin(w, r, &form, nil, true, http.StatusOK)

	case rest == "profiles":
		if !allowMethod(w, r, http.MethodPost) {
			return
		}
		h.saveProfile(w, r, 0)

	case parts[0] == "profiles" && len(parts) <= 3:
		id := atoiOrZero(parts[1])
		if id <= 0 {
			http.NotFound(w, r)
			return
		}
		action := ""
		if len(parts) == 3 {
			action = parts[2]
		}
		switch action {
		case "":
			if allowMethod(w, r, http.MethodPost) {
				h.saveProfile(w, r, id)
			}
		case "edit":
			if allowMethod(w, r, http.MethodGet) {
				h.editProfile(w, r, id)
			}
		case "delete":
			if allowMethod(w, r, http.MethodPost) {
				h.deleteProfile(w, r, id)
			}
		default:
			http.NotFound(w, r)
		}

	default:
		http.NotFound(w, r)
	}
}

func (h *PagesHandler) editProfile(w http.ResponseWriter, r *http.Request, id int) {
	h.dir.Refresh(r.Context())
	p := views.FindByID(h.dir.Snapshot().Profiles, id)
	if p == nil {
		http.Redirect(w, r, session.AdminHomePath, http.StatusSeeOther)
		return
	}
	form := views.FormFromProfile(*p)
	h.renderAdmin(w, r, &form, nil, false, http.StatusOK)
}

// saveProfile creates (id 0) or updates a profile from the posted form.
// Validation failures never reach the store; store failures keep the form
// open next to the error banner.
func (h *PagesHandler) saveProfile(w http.ResponseWriter, r *http.Request, id int) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	base := views.NewProfileForm()
	if id != 0 {
		base = views.ProfileForm{ID: id}
		if p := views.FindByID(h.dir.Snapshot().Profiles, id); p != nil {
			base = views.FormFromProfile(*p)
		}
	}
	form := views.FormFromValues(id, r.PostForm, base)

	if err := form.Validate(); err != nil {
		var verr *views.ValidationError
		if errors.As(err, &verr) {
			h.renderAdmin(w, r, &form, verr.Fields, false, http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if form.IsNew() {
		_, err = h.dir.Create(r.Context(), form.ToProfile())
	} else {
		_, err = h.dir.Update(r.Context(), id, form.ToPatch())
	}
	if err != nil {
		h.renderAdmin(w, r, &form, nil, false, storeErrorStatus(err))
		return
	}
	http.Redirect(w, r, session.AdminHomePath, http.StatusSeeOther)
}

func (h *PagesHandler) deleteProfile(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.dir.Remove(r.Context(), id); err != nil {
		h.renderAdmin(w, r, nil, nil, false, storeErrorStatus(err))
		return
	}
	http.Redirect(w, r, session.AdminHomePath, http.StatusSeeOther)
}

// renderAdmin draws the dashboard. refresh is false when the page must show
// the outcome of the call just made rather than a fresh fetch.
func (h *PagesHandler) renderAdmin(w http.ResponseWriter, r *http.Request, form *views.ProfileForm, errs map[string]string, refresh bool, status int) {
	if refresh {
		h.dir.Refresh(r.Context())
	}
	q := r.URL.Query()
	page := views.NewAdminPage(
		middleware.RoleFromContext(r.Context()),
		h.dir.Snapshot(),
		q.Get("q"),
		atoiOrZero(q.Get("selected")),
		h.widget,
		h.logger,
	)
	if form != nil {
		page = page.WithForm(*form, errs)
	}
	h.render(w, views.PageAdmin, page, status)
}

func (h *PagesHandler) render(w http.ResponseWriter, page string, data any, status int) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.logger.Error().Err(err).Str("page", page).Msg("render failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func storeErrorStatus(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
