package dto

// RoleRequest selects a role on the entry screen
type RoleRequest struct {
	Role string `json:"role"`
}

// RoleResponse returns the signed role token and where to go next
type RoleResponse struct {
	Role  string `json:"role"`
	Token string `json:"token"`
	Home  string `json:"home"`
}
