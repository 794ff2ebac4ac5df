package dto

import "PROFILE_EXPLORER_BACK-END/internal/models"

// ProfileCreateRequest is the body of POST /api/profiles
type ProfileCreateRequest struct {
	Name        string              `json:"name"`
	Title       string              `json:"title"`
	Photo       string              `json:"photo"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Description string              `json:"description"`
	Interests   []string            `json:"interests"`
	Skills      []string            `json:"skills"`
}

// ToProfile converts the request into a record without an id
func (r ProfileCreateRequest) ToProfile() models.Profile {
	return models.Profile{
		Name:        r.Name,
		Title:       r.Title,
		Photo:       r.Photo,
		Location:    r.Location,
		Coordinates: r.Coordinates,
		Email:       r.Email,
		Phone:       r.Phone,
		Description: r.Description,
		Interests:   r.Interests,
		Skills:      r.Skills,
	}
}

// ProfileUpdateRequest is the body of PUT/PATCH /api/profiles/{id}.
// All fields are optional; only provided ones are updated.
type ProfileUpdateRequest = models.ProfilePatch

// ProfileResponse wraps a single profile
type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
	Message string         `json:"message,omitempty"`
}

// ProfileListResponse wraps the directory list
type ProfileListResponse struct {
	Profiles []models.Profile `json:"profiles"`
	Count    int              `json:"count"`
	Error    string           `json:"error,omitempty"`
}

// DeleteResponse acknowledges a delete
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
