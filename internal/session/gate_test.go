package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name     string
		required models.Role
		current  models.Role
		want     Decision
	}{
		{"no role on user screen", models.RoleUser, models.RoleNone, Decision{Redirect: "/"}},
		{"no role on admin screen", models.RoleAdmin, models.RoleNone, Decision{Redirect: "/"}},
		{"user on admin screen", models.RoleAdmin, models.RoleUser, Decision{Redirect: "/home"}},
		{"admin on user screen", models.RoleUser, models.RoleAdmin, Decision{Redirect: "/dashboard"}},
		{"user on user screen", models.RoleUser, models.RoleUser, Decision{Allow: true}},
		{"admin on admin screen", models.RoleAdmin, models.RoleAdmin, Decision{Allow: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.required, tt.current))
		})
	}
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, "/home", HomeFor(models.RoleUser))
	assert.Equal(t, "/dashboard", HomeFor(models.RoleAdmin))
	assert.Equal(t, "/", HomeFor(models.RoleNone))
}
