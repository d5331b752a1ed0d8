package repository

import (
	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveTypeRepository handles database operations for leave types and their
// group scope rows
type LeaveTypeRepository struct {
	db *gorm.DB
}

// NewLeaveTypeRepository creates a new leave type repository
func NewLeaveTypeRepository(db *gorm.DB) *LeaveTypeRepository {
	return &LeaveTypeRepository{db: db}
}

// CreateWithGroups creates the leave type and its group scope rows in one
// transaction
func (r *LeaveTypeRepository) CreateWithGroups(leaveType *models.LeaveType, groupIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(leaveType).Error; err != nil {
			return err
		}
		return createGroupLinks(tx, leaveType.ID, groupIDs)
	})
}

// GetByID retrieves a leave type by ID
func (r *LeaveTypeRepository) GetByID(id uuid.UUID) (*models.LeaveType, error) {
	var leaveType models.LeaveType
	err := r.db.First(&leaveType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

// GetByOrganizationID retrieves active leave types for an organization with
// pagination
func (r *LeaveTypeRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.LeaveType, int64, error) {
	var leaveTypes []models.LeaveType
	var total int64

	if err := r.db.Model(&models.LeaveType{}).Where("organization_id = ? AND is_active", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ? AND is_active", orgID).
		Order("name").Limit(limit).Offset(offset).Find(&leaveTypes).Error
	if err != nil {
		return nil, 0, err
	}

	return leaveTypes, total, nil
}

// FindActiveCollision returns an active leave type in the organization whose
// name or short code matches case-insensitively, excluding excludeID
func (r *LeaveTypeRepository) FindActiveCollision(orgID uuid.UUID, name, shortCode string, excludeID uuid.UUID) (*models.LeaveType, error) {
	var leaveType models.LeaveType
	err := r.db.
		Where("organization_id = ? AND is_active AND (LOWER(name) = LOWER(?) OR LOWER(short_code) = LOWER(?))", orgID, name, shortCode).
		Where("id <> ?", excludeID).
		First(&leaveType).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

// GetActiveGroupIDs retrieves the group ids currently scoping the leave type
func (r *LeaveTypeRepository) GetActiveGroupIDs(leaveTypeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.LeaveTypeGroup{}).
		Where("leave_type_id = ? AND is_active", leaveTypeID).
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateWithGroups applies the column updates and, when replaceGroups is
// non-nil, swaps the active scope rows for the given set, all atomically.
// Callers pass replaceGroups only when the set actually changed.
func (r *LeaveTypeRepository) UpdateWithGroups(id uuid.UUID, updates map[string]interface{}, replaceGroups *[]uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.LeaveType{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if replaceGroups == nil {
			return nil
		}
		if err := tx.Model(&models.LeaveTypeGroup{}).
			Where("leave_type_id = ? AND is_active", id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return createGroupLinks(tx, id, *replaceGroups)
	})
}

// Deactivate soft-deactivates the leave type and its scope rows. Already
// materialized balance rows are ownership of the calculator and untouched.
func (r *LeaveTypeRepository) Deactivate(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.LeaveType{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.LeaveTypeGroup{}).
			Where("leave_type_id = ? AND is_active", id).
			Update("is_active", false).Error
	})
}

func createGroupLinks(tx *gorm.DB, leaveTypeID uuid.UUID, groupIDs []uuid.UUID) error {
	if len(groupIDs) == 0 {
		return nil
	}
	links := make([]models.LeaveTypeGroup, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		links = append(links, models.LeaveTypeGroup{
			LeaveTypeID: leaveTypeID,
			GroupID:     groupID,
			IsActive:    true,
		})
	}
	return tx.Create(&links).Error
}
