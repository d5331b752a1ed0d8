package models

import (
	"github.com/google/uuid"
)

// GroupMembership places a user in a group either as a plain member or as an
// approval manager. A user appears at most once per group while active; the
// flag, not a second row, distinguishes the two roles.
type GroupMembership struct {
	BaseModel
	GroupID           uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_group_memberships_group_user_active,where:is_active" validate:"required"`
	UserID            uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_memberships_group_user_active,where:is_active" validate:"required"`
	IsApprovalManager bool      `json:"is_approval_manager" gorm:"not null;default:false"`
	IsActive          bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Group Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMembership
func (GroupMembership) TableName() string {
	return "group_memberships"
}
