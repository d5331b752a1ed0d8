package repository

import (
	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetActiveByUserAndOrg retrieves the single active membership for the pair,
// with the role preloaded
func (r *MembershipRepository) GetActiveByUserAndOrg(userID, orgID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("Role").
		First(&membership, "user_id = ? AND organization_id = ? AND is_active", userID, orgID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetActiveByOrganization retrieves all active memberships of an organization
func (r *MembershipRepository) GetActiveByOrganization(orgID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Find(&memberships, "organization_id = ? AND is_active", orgID).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// FilterActiveUserIDs returns the subset of userIDs that hold an active
// membership in the organization
func (r *MembershipRepository) FilterActiveUserIDs(orgID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(&models.Membership{}).
		Where("organization_id = ? AND is_active AND user_id IN ?", orgID, userIDs).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Deactivate soft-deactivates a membership
func (r *MembershipRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Membership{}).Where("id = ?", id).Update("is_active", false).Error
}
