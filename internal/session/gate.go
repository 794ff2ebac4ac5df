// Package session holds the two-role access model.
package session

import "PROFILE_EXPLORER_BACK-END/internal/models"

// Screen paths the gate redirects to.
const (
	EntryPath     = "/"
	UserHomePath  = "/home"
	AdminHomePath = "/dashboard"
)

// Decision is the outcome of a guard check.
type Decision struct {
	Allow    bool
	Redirect string
}

// HomeFor returns the landing screen for a role.
func HomeFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return AdminHomePath
	case models.RoleUser:
		return UserHomePath
	default:
		return EntryPath
	}
}

// Gate decides whether a screen that needs required may render for current.
func Gate(required, current models.Role) Decision {
	if current == models.RoleNone {
		return Decision{Redirect: EntryPath}
	}
	if current != required {
		return Decision{Redirect: HomeFor(current)}
	}
	return Decision{Allow: true}
}
