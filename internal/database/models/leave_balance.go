package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveBalance is derived data materialized by the entitlement calculator,
// unique per (user, leave type, period). AllocatedDays is nil for unlimited
// leave types. Recalculation overwrites only AllocatedDays; the usage
// counters record facts the calculator must never clobber.
type LeaveBalance struct {
	BaseModel
	UserID             uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_leave_balances_key" validate:"required"`
	LeaveTypeID        uuid.UUID `json:"leave_type_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_leave_balances_key" validate:"required"`
	PeriodStart        time.Time `json:"period_start" gorm:"type:date;not null;uniqueIndex:idx_leave_balances_key" validate:"required"`
	PeriodEnd          time.Time `json:"period_end" gorm:"type:date;not null;uniqueIndex:idx_leave_balances_key" validate:"required"`
	AllocatedDays      *float64  `json:"allocated_days,omitempty"`
	UsedDays           float64   `json:"used_days" gorm:"not null;default:0"`
	AdjustedDays       float64   `json:"adjusted_days" gorm:"not null;default:0"`
	CarriedForwardDays float64   `json:"carried_forward_days" gorm:"not null;default:0"`

	// Relationships
	User        User                     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	LeaveType   LeaveType                `json:"leave_type,omitempty" gorm:"foreignKey:LeaveTypeID;constraint:OnDelete:CASCADE"`
	Adjustments []LeaveBalanceAdjustment `json:"adjustments,omitempty" gorm:"foreignKey:LeaveBalanceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LeaveBalance
func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// LeaveBalanceAdjustment is an additive grant of extra days against a
// balance. The sum of a user's active adjustments for a leave type is folded
// into the computed allocation on recalculation.
type LeaveBalanceAdjustment struct {
	BaseModel
	LeaveBalanceID uuid.UUID `json:"leave_balance_id" gorm:"type:uuid;not null;index" validate:"required"`
	AddedDays      float64   `json:"added_days" gorm:"not null"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	LeaveBalance LeaveBalance `json:"leave_balance,omitempty" gorm:"foreignKey:LeaveBalanceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LeaveBalanceAdjustment
func (LeaveBalanceAdjustment) TableName() string {
	return "leave_balance_adjustments"
}
