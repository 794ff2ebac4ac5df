package models

import "math"

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both values are finite numbers
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// Profile represents a person record in the directory
type Profile struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Photo       string       `json:"photo"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Description string       `json:"description"`
	Interests   []string     `json:"interests"`
	Skills      []string     `json:"skills"`
}

// HasValidCoordinates reports whether the profile can be plotted on a map
func (p Profile) HasValidCoordinates() bool {
	return p.Coordinates != nil && p.Coordinates.Valid()
}

// Clone returns a deep copy that shares no memory with p
func (p Profile) Clone() Profile {
	out := p
	if p.Coordinates != nil {
		c := *p.Coordinates
		out.Coordinates = &c
	}
	out.Interests = cloneStrings(p.Interests)
	out.Skills = cloneStrings(p.Skills)
	return out
}

// ProfilePatch carries a partial update; nil fields are left untouched.
// There is no ID field: identifiers never change after creation.
type ProfilePatch struct {
	Name        *string      `json:"name,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Photo       *string      `json:"photo,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Description *string      `json:"description,omitempty"`
	Interests   *[]string    `json:"interests,omitempty"`
	Skills      *[]string    `json:"skills,omitempty"`
}

// IsEmpty reports whether the patch sets no field
func (pp ProfilePatch) IsEmpty() bool {
	return pp.Name == nil && pp.Title == nil && pp.Photo == nil &&
		pp.Location == nil && pp.Coordinates == nil && pp.Email == nil &&
		pp.Phone == nil && pp.Description == nil && pp.Interests == nil &&
		pp.Skills == nil
}

// Apply merges the patch over p and returns the result. p is not modified.
func (pp ProfilePatch) Apply(p Profile) Profile {
	out := p.Clone()
	if pp.Name != nil {
		out.Name = *pp.Name
	}
	if pp.Title != nil {
		out.Title = *pp.Title
	}
	if pp.Photo != nil {
		out.Photo = *pp.Photo
	}
	if pp.Location != nil {
		out.Location = *pp.Location
	}
	if pp.Coordinates != nil {
		c := *pp.Coordinates
		out.Coordinates = &c
	}
	if pp.Email != nil {
		out.Email = *pp.Email
	}
	if pp.Phone != nil {
		out.Phone = *pp.Phone
	}
	if pp.Description != nil {
		out.Description = *pp.Description
	}
	if pp.Interests != nil {
		out.Interests = cloneStrings(*pp.Interests)
	}
	if pp.Skills != nil {
		out.Skills = cloneStrings(*pp.Skills)
	}
	return out
}

// FullPatch builds a patch that replaces every mutable field of p
func FullPatch(p Profile) ProfilePatch {
	pp := ProfilePatch{
		Name:        &p.Name,
		Title:       &p.Title,
		Photo:       &p.Photo,
		Location:    &p.Location,
		Email:       &p.Email,
		Phone:       &p.Phone,
		Description: &p.Description,
		Interests:   &p.Interests,
		Skills:      &p.Skills,
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		pp.Coordinates = &c
	}
	return pp
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
