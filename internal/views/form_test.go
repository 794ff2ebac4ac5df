package views

import (
	"errors"
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PROFILE_EXPLORER_BACK-END/internal/models"
	"PROFILE_EXPLORER_BACK-END/internal/store"
)

func validValues() url.Values {
	return url.Values{
		"name":        {"Asha Rao"},
		"title":       {"Analyst"},
		"location":    {"Goa, India"},
		"lat":         {"15.2993"},
		"lng":         {"74.124"},
		"email":       {"asha@example.com"},
		"phone":       {"9999999999"},
		"description": {"Numbers person"},
		"skills":      {"SQL, Excel,  "},
		"interests":   {"Surfing"},
	}
}

func TestNewProfileForm(t *testing.T) {
	f := NewProfileForm()
	assert.True(t, f.IsNew())
	assert.True(t, strings.HasPrefix(f.Photo, "https://api.dicebear.com/7.x/avataaars/svg?seed="))
	require.NotNil(t, f.Coordinates)
	assert.Equal(t, models.Coordinates{}, *f.Coordinates)
	assert.NotEqual(t, f.Photo, NewProfileForm().Photo)
}

func TestFormFromValues(t *testing.T) {
	f := FormFromValues(0, validValues(), NewProfileForm())
	require.NoError(t, f.Validate())

	assert.Equal(t, "Asha Rao", f.Name)
	assert.Equal(t, []string{"SQL", "Excel"}, f.Skills)
	assert.Equal(t, []string{"Surfing"}, f.Interests)
	require.NotNil(t, f.Coordinates)
	assert.InDelta(t, 15.2993, f.Coordinates.Lat, 1e-9)
	assert.Equal(t, "SQL, Excel", f.SkillsText())
}

func TestFormFromValuesKeepsBaseCoordinates(t *testing.T) {
	base := FormFromProfile(store.SampleProfiles()[0])
	v := validValues()
	v.Set("lat", "")
	v.Set("lng", "not-a-number")

	f := FormFromValues(base.ID, v, base)
	assert.Equal(t, *base.Coordinates, *f.Coordinates)
	assert.Equal(t, 1, f.ID)
	assert.False(t, f.IsNew())
}

func TestValidateMessages(t *testing.T) {
	err := ProfileForm{}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	assert.Equal(t, map[string]string{
		"name":        "Name is required",
		"title":       "Title is required",
		"location":    "Location is required",
		"email":       "Invalid email format",
		"phone":       "Phone is required",
		"description": "Description is required",
	}, verr.Fields)
}

func TestValidateInvalidEmail(t *testing.T) {
	v := validValues()
	v.Set("email", "asha.example.com")
	f := FormFromValues(0, v, NewProfileForm())

	err := f.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"email": "Invalid email format"}, verr.Fields)
	assert.Equal(t, "validation failed: email: Invalid email format", err.Error())
}

func TestToPatchCoversEditedFields(t *testing.T) {
	f := FormFromValues(3, validValues(), FormFromProfile(store.SampleProfiles()[2]))
	updated := f.ToPatch().Apply(store.SampleProfiles()[2])

	assert.Equal(t, 3, updated.ID)
	assert.Equal(t, "Asha Rao", updated.Name)
	assert.Equal(t, []string{"SQL", "Excel"}, updated.Skills)
	assert.Equal(t, "Goa, India", updated.Location)
}

func TestValidateCreate(t *testing.T) {
	assert.NoError(t, ValidateCreate(store.SampleProfiles()[0]))
	p := store.SampleProfiles()[0]
	p.Name = ""
	assert.Error(t, ValidateCreate(p))
}

func TestValidatePatch(t *testing.T) {
	blank := ""
	bad := "nope"
	good := "x@y.z"

	assert.NoError(t, ValidatePatch(models.ProfilePatch{}))
	assert.NoError(t, ValidatePatch(models.ProfilePatch{Email: &good}))

	err := ValidatePatch(models.ProfilePatch{
		Name:        &blank,
		Email:       &bad,
		Coordinates: &models.Coordinates{Lat: math.Inf(1), Lng: 0},
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, "Name is required", verr.Fields["name"])
	assert.Equal(t, "Invalid email format", verr.Fields["email"])
	assert.Contains(t, verr.Fields, "coordinates")
}
