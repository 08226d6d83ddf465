package models

// Role is the set of roles a user account can hold.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleRegistered Role = "registered"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleRegistered:
		return true
	}
	return false
}

// User represents a user account in the system.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt hash, never the plaintext
	Role     Role   `json:"role"`
}
