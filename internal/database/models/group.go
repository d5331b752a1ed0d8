package models

import (
	"github.com/google/uuid"
)

// Group represents an approval group within an organization
type Group struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_groups_org_name_active,where:is_active" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_groups_org_name_active,where:is_active" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"type:text"`
	Icon           string    `json:"icon" gorm:"size:200"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Organization Organization      `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Memberships  []GroupMembership `json:"memberships,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
