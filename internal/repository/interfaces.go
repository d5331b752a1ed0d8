package repository

import (
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	// CreateWithOwner creates the organization, seeds its three roles and the
	// creator's owner membership in a single transaction.
	CreateWithOwner(org *models.Organization, creatorUserID uuid.UUID, employeeType models.EmployeeType) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetActiveByID(id uuid.UUID) (*models.Organization, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	// Deactivate soft-deactivates the organization together with its
	// memberships in one transaction.
	Deactivate(id uuid.UUID) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByName(orgID uuid.UUID, name models.RoleName) (*models.Role, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetActiveByUserAndOrg(userID, orgID uuid.UUID) (*models.Membership, error)
	GetActiveByOrganization(orgID uuid.UUID) ([]models.Membership, error)
	// FilterActiveUserIDs returns the subset of the given user ids holding an
	// active membership in the organization.
	FilterActiveUserIDs(orgID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error)
	Deactivate(id uuid.UUID) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	// CreateWithMemberships creates the group and its initial membership rows
	// in one transaction.
	CreateWithMemberships(group *models.Group, memberships []models.GroupMembership) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetActiveByName(orgID uuid.UUID, name string) (*models.Group, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Group, int64, error)
	GetActiveMemberships(groupID uuid.UUID) ([]models.GroupMembership, error)
	GetActiveMembershipsOfGroups(groupIDs []uuid.UUID) ([]models.GroupMembership, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	// ApplyReconciliation commits removals, role changes, then additions as a
	// single transaction, in that order.
	ApplyReconciliation(groupID uuid.UUID, removeUserIDs []uuid.UUID, roleChanges map[uuid.UUID]bool, additions []models.GroupMembership) error
	// Deactivate soft-deactivates the group and its membership rows in one
	// transaction.
	Deactivate(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	// Create inserts the invitation, retiring any expired SENT invitations
	// for the same (organization, email) in the same transaction so the
	// partial unique index only guards genuinely active invitations.
	Create(invitation *models.Invitation) error
	GetByID(id uuid.UUID) (*models.Invitation, error)
	GetActiveByOrgAndEmail(orgID uuid.UUID, email string, now time.Time) (*models.Invitation, error)
	// AcceptWithMembership marks the invitation ACCEPT and creates the new
	// membership in one transaction.
	AcceptWithMembership(invitationID uuid.UUID, membership *models.Membership) error
}

// LeaveTypeRepositoryInterface defines the interface for leave type repository operations
type LeaveTypeRepositoryInterface interface {
	// CreateWithGroups creates the leave type and its group scope rows in one
	// transaction.
	CreateWithGroups(leaveType *models.LeaveType, groupIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.LeaveType, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.LeaveType, int64, error)
	// FindActiveCollision returns an active leave type in the organization
	// whose name or short code matches case-insensitively, excluding the
	// given id (uuid.Nil to exclude nothing).
	FindActiveCollision(orgID uuid.UUID, name, shortCode string, excludeID uuid.UUID) (*models.LeaveType, error)
	GetActiveGroupIDs(leaveTypeID uuid.UUID) ([]uuid.UUID, error)
	// UpdateWithGroups applies the column updates and, when replaceGroups is
	// non-nil, replaces the active group scope rows, all in one transaction.
	UpdateWithGroups(id uuid.UUID, updates map[string]interface{}, replaceGroups *[]uuid.UUID) error
	// Deactivate soft-deactivates the leave type and its group scope rows in
	// one transaction.
	Deactivate(id uuid.UUID) error
}

// LeaveBalanceRepositoryInterface defines the interface for leave balance repository operations
type LeaveBalanceRepositoryInterface interface {
	// UpsertAllocation inserts the balance row, or on conflict with the
	// (user, leave type, period) key overwrites only allocated_days and
	// updated_at.
	UpsertAllocation(balance *models.LeaveBalance) error
	GetByKey(userID, leaveTypeID uuid.UUID, periodStart, periodEnd time.Time) (*models.LeaveBalance, error)
	GetByID(id uuid.UUID) (*models.LeaveBalance, error)
	// SumActiveAdjustments totals the active adjustment rows attached to the
	// user's balances for the leave type.
	SumActiveAdjustments(userID, leaveTypeID uuid.UUID) (float64, error)
	CreateAdjustment(adjustment *models.LeaveBalanceAdjustment) error
}
