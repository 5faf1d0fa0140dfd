package models

// NavItem is a role/permission-gated entry in the sidebar menu. Children are
// one level deep and are filtered with the same rule as their parent.
type NavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	// Empty means visible to every role.
	Roles []string `json:"roles,omitempty"`
	// Empty means no permission requirement. By default any one listed
	// permission suffices; RequireAll demands every one of them.
	Permissions []string  `json:"permissions,omitempty"`
	RequireAll  bool      `json:"requireAll,omitempty"`
	Children    []NavItem `json:"children,omitempty"`
}
