package models

// User roles. Role comparison is case-insensitive everywhere.
const (
	RoleLearner    = "learner"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Role        string   `json:"role"` // learner, instructor, admin
	Avatar      string   `json:"avatar,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	// Roles this user may switch into without logging out.
	AvailableRoles []string `json:"availableRoles,omitempty"`
}

// Clone returns a deep copy so store readers never share slices with the
// published value.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Permissions = append([]string(nil), u.Permissions...)
	out.AvailableRoles = append([]string(nil), u.AvailableRoles...)
	return &out
}
