package repository

import (
	"strings"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create inserts a new invitation. Expired SENT invitations for the same
// (organization, email) are retired first so the partial unique index only
// ever guards one live invitation; a duplicate-key failure here means a
// concurrent invite won the race and surfaces as gorm.ErrDuplicatedKey.
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	invitation.Email = strings.ToLower(invitation.Email)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Invitation{}).
			Where("organization_id = ? AND email = ? AND status = ? AND is_active AND expires_at <= ?",
				invitation.OrganizationID, invitation.Email, models.InvitationStatusSent, time.Now()).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(invitation).Error
	})
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetActiveByOrgAndEmail retrieves the single SENT, unexpired invitation for
// the (organization, email) pair
func (r *InvitationRepository) GetActiveByOrgAndEmail(orgID uuid.UUID, email string, now time.Time) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation,
		"organization_id = ? AND email = ? AND status = ? AND is_active AND expires_at > ?",
		orgID, strings.ToLower(email), models.InvitationStatusSent, now).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// AcceptWithMembership marks the invitation ACCEPT and creates the joining
// membership in one transaction
func (r *InvitationRepository) AcceptWithMembership(invitationID uuid.UUID, membership *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Invitation{}).
			Where("id = ?", invitationID).
			Update("status", models.InvitationStatusAccept).Error; err != nil {
			return err
		}
		return tx.Create(membership).Error
	})
}
