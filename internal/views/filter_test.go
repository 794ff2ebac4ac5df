package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PROFILE_EXPLORER_BACK-END/internal/store"
)

func TestFilterDirectory(t *testing.T) {
	profiles := store.SampleProfiles()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query keeps all", "", []int{1, 2, 3, 4}},
		{"matches name ignoring case", "om kad", []int{4}},
		{"matches title", "ux designer", []int{2}},
		{"matches location", "mumbai", []int{1}},
		{"shared location", "pune", []int{2, 4}},
		{"no match", "zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDirectory(profiles, tt.query)
			gotIDs := make([]int, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestFilterAdminIgnoresTitle(t *testing.T) {
	profiles := store.SampleProfiles()
	assert.Empty(t, FilterAdmin(profiles, "engineer"))
	assert.Len(t, FilterDirectory(profiles, "engineer"), 1)
	assert.Len(t, FilterAdmin(profiles, ""), len(profiles))
}

func TestFilterPreservesOrder(t *testing.T) {
	profiles := store.SampleProfiles()
	got := FilterDirectory(profiles, "a")
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestFindByID(t *testing.T) {
	profiles := store.SampleProfiles()
	p := FindByID(profiles, 2)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.ID)

	p.Name = "changed"
	assert.NotEqual(t, "changed", profiles[1].Name)

	assert.Nil(t, FindByID(profiles, 99))
}
