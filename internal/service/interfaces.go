package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RoleServiceInterface defines the interface for role resolution
type RoleServiceInterface interface {
	ResolveRole(userID, organizationID uuid.UUID) (*RoleInfo, error)
	RequireAdmin(callerUserID, organizationID uuid.UUID) error
	Invalidate(userID, organizationID uuid.UUID)
	InvalidateAll()
}

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
}

// OrganizationServiceInterface defines the interface for organization operations
type OrganizationServiceInterface interface {
	Create(creatorUserID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	Deactivate(callerUserID, id uuid.UUID) error
}

// InvitationServiceInterface defines the interface for invitation operations
type InvitationServiceInterface interface {
	Invite(callerUserID, organizationID uuid.UUID, req *InviteRequest) (*InvitationResult, error)
	Join(callerUserID, organizationID uuid.UUID, invitationID *uuid.UUID) (*JoinResult, error)
}

// GroupServiceInterface defines the interface for group operations
type GroupServiceInterface interface {
	Create(callerUserID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	Edit(callerUserID, groupID uuid.UUID, req *EditGroupRequest) (*GroupResponse, error)
	Deactivate(callerUserID, groupID uuid.UUID) error
	GetByID(groupID uuid.UUID) (*GroupResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*GroupListResponse, error)
}

// LeaveTypeServiceInterface defines the interface for leave type operations
type LeaveTypeServiceInterface interface {
	Create(callerUserID uuid.UUID, req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error)
	Update(callerUserID, id uuid.UUID, req *UpdateLeaveTypeRequest) (*LeaveTypeResponse, error)
	Deactivate(callerUserID, id uuid.UUID) error
	GetByID(id uuid.UUID) (*LeaveTypeResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*LeaveTypeListResponse, error)
}

// EntitlementServiceInterface defines the interface for entitlement operations
type EntitlementServiceInterface interface {
	Calculate(organizationID, leaveTypeID uuid.UUID, periodStart, periodEnd time.Time) (*CalculationSummary, error)
	AddAdjustment(callerUserID, balanceID uuid.UUID, req *AddAdjustmentRequest) error
}
