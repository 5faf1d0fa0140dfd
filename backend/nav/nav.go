// Package nav holds the static sidebar menu and the role/permission filter
// applied to it on every render.
package nav

import (
	"learnhub/backend/auth"
	"learnhub/backend/models"
)

// Items returns the full navigation tree in display order. Entries without
// role or permission annotations are visible to everyone who is logged in.
func Items() []models.NavItem {
	return []models.NavItem{
		{
			Path:  "/dashboard",
			Label: "Dashboard",
			Icon:  "dashboard",
			Roles: []string{models.RoleAdmin, models.RoleInstructor, models.RoleLearner},
		},
		{
			Path:  "/courses",
			Label: "Courses",
			Icon:  "book",
			Roles: []string{models.RoleAdmin, models.RoleInstructor, models.RoleLearner},
		},
		{
			Path:        "/students",
			Label:       "Students",
			Icon:        "people",
			Permissions: []string{auth.PermViewStudents, auth.PermManageStudents},
		},
		{
			Path:        "/assignments",
			Label:       "Assignments",
			Icon:        "edit",
			Permissions: []string{auth.PermViewAssignments},
		},
		{
			Path:        "/grades",
			Label:       "Grades",
			Icon:        "list",
			Permissions: []string{auth.PermViewGrades},
		},
		{
			Path:        "/reports",
			Label:       "Reports",
			Icon:        "chart",
			Roles:       []string{models.RoleAdmin},
			Permissions: []string{auth.PermGenerateReports},
			RequireAll:  true,
		},
		{
			Path:        "/user-management",
			Label:       "User Management",
			Icon:        "person",
			Permissions: []string{auth.PermManageUsers},
		},
		{
			Path:  "/settings",
			Label: "Settings",
			Icon:  "gear",
			Roles: []string{models.RoleAdmin, models.RoleInstructor},
			Children: []models.NavItem{
				{
					Path:  "/settings/profile",
					Label: "Profile",
					Roles: []string{models.RoleAdmin, models.RoleInstructor},
				},
				{
					Path:        "/settings/platform",
					Label:       "Platform",
					Roles:       []string{models.RoleAdmin},
					Permissions: []string{auth.PermManageUsers},
				},
			},
		},
	}
}

// Visible filters a navigation tree down to the entries the identity may
// see. An entry is visible when its role list is empty or contains the
// user's role, and its permission requirement (any-of by default, all-of
// with RequireAll) is met. Children are filtered recursively with the same
// rule; a hidden parent hides its whole subtree. Display order is preserved.
func Visible(u *models.User, items []models.NavItem) []models.NavItem {
	if u == nil {
		return nil
	}

	var out []models.NavItem
	for _, item := range items {
		if !visible(u, item) {
			continue
		}
		item.Children = Visible(u, item.Children)
		out = append(out, item)
	}
	return out
}

func visible(u *models.User, item models.NavItem) bool {
	roleOK := len(item.Roles) == 0 || auth.HasAnyRole(u, item.Roles)
	if !roleOK {
		return false
	}
	if len(item.Permissions) == 0 {
		return true
	}
	if item.RequireAll {
		return auth.HasAllPermissions(u, item.Permissions)
	}
	return auth.HasAnyPermission(u, item.Permissions)
}
