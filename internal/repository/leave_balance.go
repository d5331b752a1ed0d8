package repository

import (
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaveBalanceRepository handles database operations for leave balances and
// their adjustments
type LeaveBalanceRepository struct {
	db *gorm.DB
}

// NewLeaveBalanceRepository creates a new leave balance repository
func NewLeaveBalanceRepository(db *gorm.DB) *LeaveBalanceRepository {
	return &LeaveBalanceRepository{db: db}
}

// UpsertAllocation inserts the balance row, or on conflict with the period
// key overwrites only allocated_days and updated_at. Usage counters recorded
// against an existing row survive recalculation; the unique index is the
// race-breaker for concurrent recomputation.
func (r *LeaveBalanceRepository) UpsertAllocation(balance *models.LeaveBalance) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "leave_type_id"},
			{Name: "period_start"},
			{Name: "period_end"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"allocated_days": balance.AllocatedDays,
			"updated_at":     time.Now(),
		}),
	}).Create(balance).Error
}

// GetByKey retrieves a balance by its unique (user, leave type, period) key
func (r *LeaveBalanceRepository) GetByKey(userID, leaveTypeID uuid.UUID, periodStart, periodEnd time.Time) (*models.LeaveBalance, error) {
	var balance models.LeaveBalance
	err := r.db.First(&balance,
		"user_id = ? AND leave_type_id = ? AND period_start = ? AND period_end = ?",
		userID, leaveTypeID, periodStart, periodEnd).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// GetByID retrieves a balance by ID
func (r *LeaveBalanceRepository) GetByID(id uuid.UUID) (*models.LeaveBalance, error) {
	var balance models.LeaveBalance
	err := r.db.First(&balance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// SumActiveAdjustments totals the active adjustment rows across the user's
// balances for the leave type
func (r *LeaveBalanceRepository) SumActiveAdjustments(userID, leaveTypeID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.Model(&models.LeaveBalanceAdjustment{}).
		Joins("JOIN leave_balances ON leave_balances.id = leave_balance_adjustments.leave_balance_id").
		Where("leave_balances.user_id = ? AND leave_balances.leave_type_id = ? AND leave_balance_adjustments.is_active", userID, leaveTypeID).
		Select("COALESCE(SUM(leave_balance_adjustments.added_days), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CreateAdjustment records an additive grant of extra days
func (r *LeaveBalanceRepository) CreateAdjustment(adjustment *models.LeaveBalanceAdjustment) error {
	return r.db.Create(adjustment).Error
}
