package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Profile {
	return Profile{
		ID:          2,
		Name:        "Raj Singh",
		Title:       "UX Designer",
		Location:    "Pune, Maharastra",
		Coordinates: &Coordinates{Lat: 18.5204, Lng: 73.8567},
		Email:       "raj.singh@gmail.com",
		Phone:       "8390538777",
		Interests:   []string{"Design", "Travel"},
		Skills:      []string{"Figma"},
	}
}

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, Coordinates{Lat: 0, Lng: 0}.Valid())
	assert.False(t, Coordinates{Lat: math.NaN(), Lng: 1}.Valid())
	assert.False(t, Coordinates{Lat: 1, Lng: math.Inf(1)}.Valid())

	p := sample()
	assert.True(t, p.HasValidCoordinates())
	p.Coordinates = nil
	assert.False(t, p.HasValidCoordinates())
}

func TestPatchApplyKeepsOmittedFields(t *testing.T) {
	before := sample()
	loc := "Pune, Maharashtra"

	after := ProfilePatch{Location: &loc}.Apply(before)

	assert.Equal(t, loc, after.Location)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.Phone, after.Phone)
	assert.Equal(t, before.Skills, after.Skills)
	assert.Equal(t, "Pune, Maharastra", before.Location, "input must not be modified")
}

func TestPatchApplyDoesNotAlias(t *testing.T) {
	skills := []string{"Go"}
	after := ProfilePatch{Skills: &skills}.Apply(sample())
	skills[0] = "Rust"
	assert.Equal(t, []string{"Go"}, after.Skills)
}

func TestCloneDeepCopies(t *testing.T) {
	p := sample()
	c := p.Clone()
	c.Coordinates.Lat = 1
	c.Interests[0] = "changed"
	assert.Equal(t, 18.5204, p.Coordinates.Lat)
	assert.Equal(t, "Design", p.Interests[0])
}

func TestFullPatchRoundTrip(t *testing.T) {
	src := sample()
	src.Name = "New Name"
	pp := FullPatch(src)
	require.False(t, pp.IsEmpty())

	got := pp.Apply(Profile{ID: 9})
	assert.Equal(t, 9, got.ID)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, src.Coordinates, got.Coordinates)
	assert.True(t, ProfilePatch{}.IsEmpty())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("root")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}
