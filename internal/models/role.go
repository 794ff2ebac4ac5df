package models

import "fmt"

// Role selects which screens a visitor may reach
type Role string

const (
	RoleNone  Role = ""
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts the role name chosen on the entry screen
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return RoleNone, fmt.Errorf("unknown role %q", s)
	}
}
