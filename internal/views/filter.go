package views

import (
	"strings"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// FilterDirectory keeps profiles whose name, location or title contains q,
// ignoring case. An empty q keeps everything.
func FilterDirectory(profiles []models.Profile, q string) []models.Profile {
	return filter(profiles, q, func(p models.Profile) []string {
		return []string{p.Name, p.Location, p.Title}
	})
}

// FilterAdmin keeps profiles whose name or location contains q, ignoring case.
func FilterAdmin(profiles []models.Profile, q string) []models.Profile {
	return filter(profiles, q, func(p models.Profile) []string {
		return []string{p.Name, p.Location}
	})
}

func filter(profiles []models.Profile, q string, fields func(models.Profile) []string) []models.Profile {
	needle := strings.ToLower(q)
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		for _, f := range fields(p) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// FindByID returns the profile with id, or nil.
func FindByID(profiles []models.Profile, id int) *models.Profile {
	for i := range profiles {
		if profiles[i].ID == id {
			p := profiles[i]
			return &p
		}
	}
	return nil
}
