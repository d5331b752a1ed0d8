package models

import (
	"github.com/google/uuid"
)

// Role is one of the three fixed roles, seeded per organization and
// referenced by id from memberships and invitations.
type Role struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_roles_org_name" validate:"required"`
	Name           RoleName  `json:"name" gorm:"type:varchar(20);not null;uniqueIndex:idx_roles_org_name" validate:"required"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
