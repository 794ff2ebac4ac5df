package store

import (
	"fmt"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// IDScheme picks the identifier for a newly created profile.
type IDScheme interface {
	Next(current []models.Profile) int
}

// LengthPlusOne assigns len(collection)+1. This matches the reference mock
// and can hand out an id that is still in use once anything was deleted.
type LengthPlusOne struct{}

func (LengthPlusOne) Next(current []models.Profile) int {
	return len(current) + 1
}

// MaxPlusOne assigns one more than the highest id in the collection.
type MaxPlusOne struct{}

func (MaxPlusOne) Next(current []models.Profile) int {
	highest := 0
	for _, p := range current {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}

// ParseIDScheme maps a configuration value to a scheme.
func ParseIDScheme(name string) (IDScheme, error) {
	switch name {
	case "", "max":
		return MaxPlusOne{}, nil
	case "length":
		return LengthPlusOne{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q (want \"max\" or \"length\")", name)
	}
}
