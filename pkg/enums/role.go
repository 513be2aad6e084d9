package enums

import "fmt"

// Role is the account type: an end user tracking wellness, or a clinician
// overseeing assigned patients.
type Role string

const (
	RolePatient  Role = "patient"
	RoleProvider Role = "provider"
)

var validRoles = []Role{
	RolePatient,
	RoleProvider,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
