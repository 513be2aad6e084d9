// Package authz maps roles to capabilities. Routes declare the permission
// they need instead of enumerating roles, so adding a role means editing one
// table.
package authz

import "github.com/carewell-health/carewell-backend/pkg/enums"

// Permission names a guarded capability.
type Permission string

const (
	PermManageOwnProfile Permission = "profile:manage"
	PermTrackWellness    Permission = "wellness:track"
	PermManageReminders  Permission = "reminders:manage"
	PermManagePatients   Permission = "patients:manage"
	PermReviewCompliance Permission = "compliance:review"
)

var grants = map[enums.Role]map[Permission]bool{
	enums.RolePatient: {
		PermManageOwnProfile: true,
		PermTrackWellness:    true,
		PermManageReminders:  true,
	},
	enums.RoleProvider: {
		PermManagePatients:   true,
		PermReviewCompliance: true,
	},
}

// Can reports whether the role holds the permission.
func Can(role enums.Role, perm Permission) bool {
	return grants[role][perm]
}
