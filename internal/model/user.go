package model

// Role is a user's access level in the tracker.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	// RoleViewer is the lowest-privilege read-only role.
	RoleViewer Role = "viewer"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks whether the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// User is a tracker account, read from the host app's user store for
// role checks and owner-username enrichment.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
