package views

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// ValidationError maps field names to messages. It never reaches the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ProfileForm is the admin edit form. ID is zero for a new profile.
type ProfileForm struct {
	ID          int
	Name        string
	Title       string
	Photo       string
	Location    string
	Coordinates *models.Coordinates
	Email       string
	Phone       string
	Description string
	Interests   []string
	Skills      []string
}

// IsNew reports whether saving creates a profile.
func (f ProfileForm) IsNew() bool {
	return f.ID == 0
}

// NewProfileForm returns the blank form with a generated avatar.
func NewProfileForm() ProfileForm {
	return ProfileForm{
		Photo:       fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s&backgroundColor=random", uuid.NewString()),
		Coordinates: &models.Coordinates{Lat: 0, Lng: 0},
		Interests:   []string{},
		Skills:      []string{},
	}
}

// FormFromProfile fills the form for editing p.
func FormFromProfile(p models.Profile) ProfileForm {
	c := p.Clone()
	return ProfileForm{
		ID:          c.ID,
		Name:        c.Name,
		Title:       c.Title,
		Photo:       c.Photo,
		Location:    c.Location,
		Coordinates: c.Coordinates,
		Email:       c.Email,
		Phone:       c.Phone,
		Description: c.Description,
		Interests:   c.Interests,
		Skills:      c.Skills,
	}
}

// FormFromValues reads a submitted form. base supplies the values of fields
// the form does not carry, e.g. the coordinates when no place was picked.
func FormFromValues(id int, v url.Values, base ProfileForm) ProfileForm {
	f := base
	f.ID = id
	f.Name = strings.TrimSpace(v.Get("name"))
	f.Title = strings.TrimSpace(v.Get("title"))
	f.Location = strings.TrimSpace(v.Get("location"))
	f.Email = strings.TrimSpace(v.Get("email"))
	f.Phone = strings.TrimSpace(v.Get("phone"))
	f.Description = strings.TrimSpace(v.Get("description"))
	if photo := strings.TrimSpace(v.Get("photo")); photo != "" {
		f.Photo = photo
	}
	if c, ok := parseCoordinates(v.Get("lat"), v.Get("lng")); ok {
		f.Coordinates = &c
	}
	if v.Has("interests") {
		f.Interests = splitList(v.Get("interests"))
	}
	if v.Has("skills") {
		f.Skills = splitList(v.Get("skills"))
	}
	return f
}

// Validate checks the required fields. It returns nil or *ValidationError.
func (f ProfileForm) Validate() error {
	errs := map[string]string{}
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if f.Title == "" {
		errs["title"] = "Title is required"
	}
	if f.Location == "" {
		errs["location"] = "Location is required"
	}
	if f.Email == "" {
		errs["email"] = "Email is required"
	}
	if !strings.Contains(f.Email, "@") {
		errs["email"] = "Invalid email format"
	}
	if f.Phone == "" {
		errs["phone"] = "Phone is required"
	}
	if f.Description == "" {
		errs["description"] = "Description is required"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ToProfile builds the record to create.
func (f ProfileForm) ToProfile() models.Profile {
	return models.Profile{
		ID:          f.ID,
		Name:        f.Name,
		Title:       f.Title,
		Photo:       f.Photo,
		Location:    f.Location,
		Coordinates: f.Coordinates,
		Email:       f.Email,
		Phone:       f.Phone,
		Description: f.Description,
		Interests:   f.Interests,
		Skills:      f.Skills,
	}.Clone()
}

// ToPatch builds a patch replacing every field the form edits.
func (f ProfileForm) ToPatch() models.ProfilePatch {
	return models.FullPatch(f.ToProfile())
}

// InterestsText and SkillsText render the lists for a text input.
func (f ProfileForm) InterestsText() string { return strings.Join(f.Interests, ", ") }
func (f ProfileForm) SkillsText() string { return strings.Join(f.Skills, ", ") }

// ValidateCreate applies the form rules to a record submitted through the API.
func ValidateCreate(p models.Profile) error {
	return FormFromProfile(p).Validate()
}

// ValidatePatch checks only the fields a patch sets: required fields may not
// be blanked and an email must contain "@".
func ValidatePatch(pp models.ProfilePatch) error {
	errs := map[string]string{}
	required := []struct {
		key, msg string
		v        *string
	}{
		{"name", "Name is required", pp.Name},
		{"title", "Title is required", pp.Title},
		{"location", "Location is required", pp.Location},
		{"phone", "Phone is required", pp.Phone},
		{"description", "Description is required", pp.Description},
	}
	for _, r := range required {
		if r.v != nil && strings.TrimSpace(*r.v) == "" {
			errs[r.key] = r.msg
		}
	}
	if pp.Email != nil && !strings.Contains(*pp.Email, "@") {
		errs["email"] = "Invalid email format"
	}
	if pp.Coordinates != nil && !pp.Coordinates.Valid() {
		errs["coordinates"] = "Coordinates must be finite numbers"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func parseCoordinates(lat, lng string) (models.Coordinates, bool) {
	if strings.TrimSpace(lat) == "" || strings.TrimSpace(lng) == "" {
		return models.Coordinates{}, false
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	c := models.Coordinates{Lat: la, Lng: ln}
	return c, c.Valid()
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
