package auth

import (
	"strings"

	"learnhub/backend/models"
)

// Permission strings understood by the navigation filter and route guards.
const (
	PermViewStudents      = "view_students"
	PermManageStudents    = "manage_students"
	PermViewAssignments   = "view_assignments"
	PermManageAssignments = "manage_assignments"
	PermViewGrades        = "view_grades"
	PermEditGrades        = "edit_grades"
	PermGenerateReports   = "generate_reports"
	PermManageUsers       = "manage_users"
)

// rolePermissions is the fixed role table. Each role's set contains the
// previous one: learner < instructor < admin. Admin is additionally granted
// every permission regardless of this table (see HasPermission).
var rolePermissions = map[string][]string{
	models.RoleLearner: {
		PermViewAssignments,
		PermViewGrades,
	},
	models.RoleInstructor: {
		PermViewStudents,
		PermViewAssignments,
		PermManageAssignments,
		PermViewGrades,
		PermEditGrades,
	},
	models.RoleAdmin: {
		PermViewStudents,
		PermManageStudents,
		PermViewAssignments,
		PermManageAssignments,
		PermViewGrades,
		PermEditGrades,
		PermGenerateReports,
		PermManageUsers,
	},
}

// PermissionsFor returns a copy of the permission set for a role. Unknown
// roles get an empty set.
func PermissionsFor(role string) []string {
	return append([]string(nil), rolePermissions[strings.ToLower(role)]...)
}

// HasRole reports whether the user holds the given role.
func HasRole(u *models.User, role string) bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(u.Role, role)
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func HasAnyRole(u *models.User, roles []string) bool {
	if u == nil {
		return false
	}
	for _, role := range roles {
		if strings.EqualFold(u.Role, role) {
			return true
		}
	}
	return false
}

// HasPermission reports whether the user holds a permission. Admins hold
// every permission implicitly.
func HasPermission(u *models.User, permission string) bool {
	if u == nil {
		return false
	}
	if strings.EqualFold(u.Role, models.RoleAdmin) {
		return true
	}
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the user holds at least one of perms.
func HasAnyPermission(u *models.User, perms []string) bool {
	for _, p := range perms {
		if HasPermission(u, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the user holds every one of perms.
func HasAllPermissions(u *models.User, perms []string) bool {
	for _, p := range perms {
		if !HasPermission(u, p) {
			return false
		}
	}
	return true
}
