package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation invites an email address into an organization with a role.
// Only one active SENT invitation may exist per (organization, email); the
// partial unique index is the race-breaker behind the application-level
// duplicate check. Expired invitations stay SENT and simply become inert;
// they are flagged inactive only when superseded by a fresh invitation.
type Invitation struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_invitations_org_email_active,where:is_active AND status = 'SENT'" validate:"required"`
	Email          string           `json:"email" gorm:"not null;size:255;uniqueIndex:idx_invitations_org_email_active,where:is_active AND status = 'SENT'" validate:"required,email,max=255"`
	RoleID         uuid.UUID        `json:"role_id" gorm:"type:uuid;not null" validate:"required"`
	Status         InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'SENT'"`
	ExpiresAt      time.Time        `json:"expires_at" gorm:"not null"`
	IsActive       bool             `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Role         Role         `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsExpired reports whether the invitation has passed its expiry
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsConsumable reports whether the invitation can still be accepted
func (i *Invitation) IsConsumable(now time.Time) bool {
	return i.Status == InvitationStatusSent && !i.IsExpired(now)
}
