package models

import (
	"github.com/google/uuid"
)

// Membership links a user to an organization with a role.
// At most one active membership exists per (user, organization) pair; the
// partial unique index excludes deactivated rows so a user can rejoin.
type Membership struct {
	BaseModel
	UserID         uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org_active,where:is_active" validate:"required"`
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_memberships_user_org_active,where:is_active" validate:"required"`
	RoleID         uuid.UUID    `json:"role_id" gorm:"type:uuid;not null" validate:"required"`
	IsOwner        bool         `json:"is_owner" gorm:"not null;default:false"`
	EmployeeType   EmployeeType `json:"employee_type" gorm:"type:varchar(20);not null;default:'FULL_TIME'"`
	IsActive       bool         `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Role         Role         `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
