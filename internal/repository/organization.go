package repository

import (
	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner creates the organization, seeds the three fixed roles and
// creates the creator's owner membership, all in one transaction. The creator
// is the only membership with is_owner set.
func (r *OrganizationRepository) CreateWithOwner(org *models.Organization, creatorUserID uuid.UUID, employeeType models.EmployeeType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		roles := make([]models.Role, 0, 3)
		for _, name := range models.AllRoleNames() {
			roles = append(roles, models.Role{OrganizationID: org.ID, Name: name})
		}
		if err := tx.Create(&roles).Error; err != nil {
			return err
		}

		var ownerRole models.Role
		if err := tx.First(&ownerRole, "organization_id = ? AND name = ?", org.ID, models.RoleOwner).Error; err != nil {
			return err
		}

		membership := &models.Membership{
			UserID:         creatorUserID,
			OrganizationID: org.ID,
			RoleID:         ownerRole.ID,
			IsOwner:        true,
			EmployeeType:   employeeType,
			IsActive:       true,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetActiveByID retrieves an active organization by ID
func (r *OrganizationRepository) GetActiveByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ? AND is_active", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization using a map of updates
func (r *OrganizationRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Organization{}).Where("id = ?", id).Updates(updates).Error
}

// Deactivate soft-deactivates the organization and all of its memberships
func (r *OrganizationRepository) Deactivate(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Organization{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Membership{}).
			Where("organization_id = ? AND is_active", id).
			Update("is_active", false).Error
	})
}
