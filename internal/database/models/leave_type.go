package models

import (
	"github.com/google/uuid"
)

// LeaveType is an organization-scoped leave rule set. Name and short code are
// unique case-insensitively among the organization's active leave types.
// LimitType and LimitDays are only set when IsLimited is true; the service
// layer works with the LeaveLimit union and writes the columns from it.
type LeaveType struct {
	BaseModel
	OrganizationID    uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name              string       `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	ShortCode         string       `json:"short_code" gorm:"not null;size:20" validate:"required,min=1,max=20"`
	IsLimited         bool         `json:"is_limited" gorm:"not null;default:false"`
	LimitType         *LimitType   `json:"limit_type,omitempty" gorm:"type:varchar(20)"`
	LimitDays         *float64     `json:"limit_days,omitempty"`
	AppliesToEveryone bool         `json:"applies_to_everyone" gorm:"not null;default:true"`
	EmployeeType      EmployeeType `json:"employee_type" gorm:"type:varchar(20);not null;default:'FULL_TIME'"`
	IsActive          bool         `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Organization Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	GroupLinks   []LeaveTypeGroup `json:"group_links,omitempty" gorm:"foreignKey:LeaveTypeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LeaveType
func (LeaveType) TableName() string {
	return "leave_types"
}

// Limit reads the stored columns back into the LeaveLimit union
func (lt *LeaveType) Limit() LeaveLimit {
	if !lt.IsLimited || lt.LimitType == nil || lt.LimitDays == nil {
		return UnlimitedLeave()
	}
	return LeaveLimit{limited: true, limitType: *lt.LimitType, days: *lt.LimitDays}
}

// LeaveTypeGroup scopes a leave type to a group when the type does not apply
// to everyone in the organization.
type LeaveTypeGroup struct {
	BaseModel
	LeaveTypeID uuid.UUID `json:"leave_type_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_leave_type_groups_active,where:is_active" validate:"required"`
	GroupID     uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_leave_type_groups_active,where:is_active" validate:"required"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	LeaveType LeaveType `json:"leave_type,omitempty" gorm:"foreignKey:LeaveTypeID;constraint:OnDelete:CASCADE"`
	Group     Group     `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LeaveTypeGroup
func (LeaveTypeGroup) TableName() string {
	return "leave_type_groups"
}
