package repository

import (
	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups and their
// membership rows
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithMemberships creates the group and its initial membership rows in
// one transaction
func (r *GroupRepository) CreateWithMemberships(group *models.Group, memberships []models.GroupMembership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		for i := range memberships {
			memberships[i].GroupID = group.ID
		}
		if len(memberships) == 0 {
			return nil
		}
		return tx.Create(&memberships).Error
	})
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetActiveByName retrieves an active group by exact name within an
// organization. Name matching is deliberately case-sensitive.
func (r *GroupRepository) GetActiveByName(orgID uuid.UUID, name string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "organization_id = ? AND name = ? AND is_active", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByOrganizationID retrieves active groups for an organization with pagination
func (r *GroupRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	if err := r.db.Model(&models.Group{}).Where("organization_id = ? AND is_active", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ? AND is_active", orgID).
		Order("name").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// GetActiveMemberships retrieves the active membership rows of a group
func (r *GroupRepository) GetActiveMemberships(groupID uuid.UUID) ([]models.GroupMembership, error) {
	var rows []models.GroupMembership
	err := r.db.Find(&rows, "group_id = ? AND is_active", groupID).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetActiveMembershipsOfGroups retrieves the active membership rows across a
// set of groups
func (r *GroupRepository) GetActiveMembershipsOfGroups(groupIDs []uuid.UUID) ([]models.GroupMembership, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}
	var rows []models.GroupMembership
	err := r.db.Find(&rows, "group_id IN ? AND is_active", groupIDs).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update updates a group using a map of updates
func (r *GroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates).Error
}

// ApplyReconciliation applies a membership diff atomically. Removals run
// before role changes and additions so a re-added user never trips the
// partial unique index mid-transaction.
func (r *GroupRepository) ApplyReconciliation(groupID uuid.UUID, removeUserIDs []uuid.UUID, roleChanges map[uuid.UUID]bool, additions []models.GroupMembership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(removeUserIDs) > 0 {
			if err := tx.Model(&models.GroupMembership{}).
				Where("group_id = ? AND user_id IN ? AND is_active", groupID, removeUserIDs).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		for userID, isManager := range roleChanges {
			if err := tx.Model(&models.GroupMembership{}).
				Where("group_id = ? AND user_id = ? AND is_active", groupID, userID).
				Update("is_approval_manager", isManager).Error; err != nil {
				return err
			}
		}

		if len(additions) > 0 {
			for i := range additions {
				additions[i].GroupID = groupID
			}
			if err := tx.Create(&additions).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Deactivate soft-deactivates the group and its membership rows
func (r *GroupRepository) Deactivate(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Group{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.GroupMembership{}).
			Where("group_id = ? AND is_active", id).
			Update("is_active", false).Error
	})
}
