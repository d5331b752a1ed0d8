package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/logger"
	"github.com/teamEPYC/leave-management-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntitlementService resolves leave-type rules into concrete per-user
// allocations for a period. Recomputation is idempotent: the balance upsert
// only ever touches the allocation, never usage counters, and the per-user
// loop tolerates partial failure because re-running it is always safe.
type EntitlementService struct {
	balanceRepo    repository.LeaveBalanceRepositoryInterface
	leaveTypeRepo  repository.LeaveTypeRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	roleService    *RoleService
	log            *logger.Logger
}

// NewEntitlementService creates a new entitlement service
func NewEntitlementService(
	balanceRepo repository.LeaveBalanceRepositoryInterface,
	leaveTypeRepo repository.LeaveTypeRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	roleService *RoleService,
) *EntitlementService {
	return &EntitlementService{
		balanceRepo:    balanceRepo,
		leaveTypeRepo:  leaveTypeRepo,
		membershipRepo: membershipRepo,
		groupRepo:      groupRepo,
		roleService:    roleService,
		log:            logger.New(),
	}
}

// UserAllocation is the computed outcome for one eligible user
type UserAllocation struct {
	UserID        uuid.UUID `json:"user_id"`
	AllocatedDays *float64  `json:"allocated_days"` // nil = unlimited
}

// UserFailure reports a user whose upsert failed; the rest of the batch is
// unaffected
type UserFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Error  string    `json:"error"`
}

// CalculationSummary represents the outcome of one entitlement run
type CalculationSummary struct {
	LeaveTypeID   uuid.UUID        `json:"leave_type_id"`
	PeriodStart   time.Time        `json:"period_start"`
	PeriodEnd     time.Time        `json:"period_end"`
	EligibleUsers int              `json:"eligible_users"`
	Updated       int              `json:"updated"`
	Allocations   []UserAllocation `json:"allocations"`
	Failures      []UserFailure    `json:"failures,omitempty"`
}

// AddAdjustmentRequest represents the request to grant extra days against a
// balance
type AddAdjustmentRequest struct {
	AddedDays float64 `json:"added_days"`
}

// Calculate resolves the allocation for every eligible user of the leave
// type and upserts their balance rows for the period. Each user's upsert is
// independently atomic; failures are collected rather than rolled back.
func (s *EntitlementService) Calculate(organizationID, leaveTypeID uuid.UUID, periodStart, periodEnd time.Time) (*CalculationSummary, error) {
	if !periodEnd.After(periodStart) {
		return nil, apperrors.NewValidationError("period_end", "period end must be after period start")
	}

	leaveType, err := s.leaveTypeRepo.GetByID(leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}
	if leaveType.OrganizationID != organizationID {
		return nil, apperrors.NewValidationError("leave_type_id", "leave type belongs to another organization")
	}
	if !leaveType.IsActive {
		return nil, apperrors.ErrLeaveTypeNotFound
	}

	eligible, err := s.eligibleUserIDs(leaveType)
	if err != nil {
		return nil, err
	}

	summary := &CalculationSummary{
		LeaveTypeID:   leaveTypeID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		EligibleUsers: len(eligible),
	}

	limit := leaveType.Limit()
	baseQuota := limit.BaseQuota()

	for _, userID := range eligible {
		allocated, err := s.allocationFor(userID, leaveTypeID, baseQuota)
		if err != nil {
			summary.Failures = append(summary.Failures, UserFailure{UserID: userID, Error: err.Error()})
			continue
		}

		balance := &models.LeaveBalance{
			UserID:        userID,
			LeaveTypeID:   leaveTypeID,
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
			AllocatedDays: allocated,
		}
		if err := s.balanceRepo.UpsertAllocation(balance); err != nil {
			summary.Failures = append(summary.Failures, UserFailure{UserID: userID, Error: err.Error()})
			continue
		}

		summary.Updated++
		summary.Allocations = append(summary.Allocations, UserAllocation{UserID: userID, AllocatedDays: allocated})
	}

	if len(summary.Failures) > 0 {
		s.log.WithFields(map[string]interface{}{
			"leave_type_id": leaveTypeID,
			"failures":      len(summary.Failures),
		}).Warn("entitlement calculation completed with per-user failures")
	}

	return summary, nil
}

// AddAdjustment records extra days granted by an owner or admin against a
// balance. The grant takes effect on the next recalculation of the period.
func (s *EntitlementService) AddAdjustment(callerUserID, balanceID uuid.UUID, req *AddAdjustmentRequest) error {
	if req.AddedDays == 0 {
		return apperrors.NewValidationError("added_days", "added days must be non-zero")
	}

	balance, err := s.balanceRepo.GetByID(balanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeaveBalanceNotFound
		}
		return fmt.Errorf("failed to get leave balance: %w", err)
	}

	leaveType, err := s.leaveTypeRepo.GetByID(balance.LeaveTypeID)
	if err != nil {
		return fmt.Errorf("failed to get leave type: %w", err)
	}

	if err := s.roleService.RequireAdmin(callerUserID, leaveType.OrganizationID); err != nil {
		return err
	}

	adjustment := &models.LeaveBalanceAdjustment{
		LeaveBalanceID: balanceID,
		AddedDays:      req.AddedDays,
		IsActive:       true,
	}
	if err := s.balanceRepo.CreateAdjustment(adjustment); err != nil {
		return fmt.Errorf("failed to create adjustment: %w", err)
	}
	return nil
}

// eligibleUserIDs returns the users the leave type applies to: the union of
// the associated groups' active members when group-scoped, otherwise every
// active member of the organization, always filtered by employee type.
func (s *EntitlementService) eligibleUserIDs(leaveType *models.LeaveType) ([]uuid.UUID, error) {
	memberships, err := s.membershipRepo.GetActiveByOrganization(leaveType.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization members: %w", err)
	}

	matchingType := make(map[uuid.UUID]struct{}, len(memberships))
	for _, m := range memberships {
		if m.EmployeeType == leaveType.EmployeeType {
			matchingType[m.UserID] = struct{}{}
		}
	}

	var eligible []uuid.UUID
	if leaveType.AppliesToEveryone {
		for userID := range matchingType {
			eligible = append(eligible, userID)
		}
	} else {
		groupIDs, err := s.leaveTypeRepo.GetActiveGroupIDs(leaveType.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load group scope: %w", err)
		}
		rows, err := s.groupRepo.GetActiveMembershipsOfGroups(groupIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load group members: %w", err)
		}
		seen := make(map[uuid.UUID]struct{}, len(rows))
		for _, row := range rows {
			if _, dup := seen[row.UserID]; dup {
				continue
			}
			seen[row.UserID] = struct{}{}
			if _, ok := matchingType[row.UserID]; ok {
				eligible = append(eligible, row.UserID)
			}
		}
	}

	sort.Slice(eligible, func(i, j int) bool { return eligible[i].String() < eligible[j].String() })
	return eligible, nil
}

// allocationFor computes one user's final allocation: nil for unlimited,
// otherwise the base quota plus the user's active adjustments
func (s *EntitlementService) allocationFor(userID, leaveTypeID uuid.UUID, baseQuota *float64) (*float64, error) {
	if baseQuota == nil {
		return nil, nil
	}
	extra, err := s.balanceRepo.SumActiveAdjustments(userID, leaveTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum adjustments: %w", err)
	}
	final := *baseQuota + extra
	return &final, nil
}
