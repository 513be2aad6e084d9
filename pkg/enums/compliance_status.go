package enums

import "fmt"

// ComplianceStatus is the provider-set classification of a patient's
// adherence to preventive care. Providers may set any value at any time.
type ComplianceStatus string

const (
	ComplianceGoalMet       ComplianceStatus = "Goal Met"
	ComplianceMissedCheckup ComplianceStatus = "Missed Preventive Checkup"
	CompliancePending       ComplianceStatus = "Pending"
)

var validComplianceStatuses = []ComplianceStatus{
	ComplianceGoalMet,
	ComplianceMissedCheckup,
	CompliancePending,
}

// ComplianceStatuses returns the accepted values, for validation messages.
func ComplianceStatuses() []string {
	out := make([]string, 0, len(validComplianceStatuses))
	for _, candidate := range validComplianceStatuses {
		out = append(out, string(candidate))
	}
	return out
}

// String implements fmt.Stringer.
func (c ComplianceStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComplianceStatus.
func (c ComplianceStatus) IsValid() bool {
	for _, candidate := range validComplianceStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComplianceStatus converts raw input into a ComplianceStatus.
func ParseComplianceStatus(value string) (ComplianceStatus, error) {
	for _, candidate := range validComplianceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid compliance status %q", value)
}
