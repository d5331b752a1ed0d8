package models

import (
	"encoding/json"
)

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name     string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Domain   string          `json:"domain" gorm:"uniqueIndex:idx_organizations_domain_active,where:is_active;not null;size:100" validate:"required,max=100"`
	Settings json.RawMessage `json:"settings" gorm:"type:jsonb"`
	IsActive bool            `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Roles       []Role       `json:"roles,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Groups      []Group      `json:"groups,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	LeaveTypes  []LeaveType  `json:"leave_types,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
