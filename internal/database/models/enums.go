package models

// RoleName is the fixed set of organization roles
type RoleName string

const (
	RoleOwner    RoleName = "OWNER"
	RoleAdmin    RoleName = "ADMIN"
	RoleEmployee RoleName = "EMPLOYEE"
)

// IsValid checks if the RoleName is valid
func (r RoleName) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// AllRoleNames lists the roles seeded for every organization
func AllRoleNames() []RoleName {
	return []RoleName{RoleOwner, RoleAdmin, RoleEmployee}
}

// EmployeeType distinguishes full-time from part-time employment
type EmployeeType string

const (
	EmployeeTypeFullTime EmployeeType = "FULL_TIME"
	EmployeeTypePartTime EmployeeType = "PART_TIME"
)

// IsValid checks if the EmployeeType is valid
func (e EmployeeType) IsValid() bool {
	return e == EmployeeTypeFullTime || e == EmployeeTypePartTime
}

// InvitationStatus tracks the invitation state machine (SENT -> ACCEPT)
type InvitationStatus string

const (
	InvitationStatusSent   InvitationStatus = "SENT"
	InvitationStatusAccept InvitationStatus = "ACCEPT"
)

// LimitType is the period granularity of a limited leave type
type LimitType string

const (
	LimitTypeYear    LimitType = "YEAR"
	LimitTypeQuarter LimitType = "QUARTER"
	LimitTypeMonth   LimitType = "MONTH"
)

// IsValid checks if the LimitType is valid
func (l LimitType) IsValid() bool {
	switch l {
	case LimitTypeYear, LimitTypeQuarter, LimitTypeMonth:
		return true
	}
	return false
}

// PeriodsPerYear returns how many allocation periods the granularity spans
func (l LimitType) PeriodsPerYear() float64 {
	switch l {
	case LimitTypeQuarter:
		return 4
	case LimitTypeMonth:
		return 12
	default:
		return 1
	}
}
