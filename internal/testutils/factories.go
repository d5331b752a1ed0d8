package testutils

import (
	"fmt"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		Name:     "Test User",
		IsActive: true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Organization",
		Domain:   fmt.Sprintf("org-%s.example.com", id.String()[:8]),
		IsActive: true,
	}
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with the given name in an organization
func (f *RoleFactory) Create(orgID uuid.UUID, name models.RoleName) *models.Role {
	return &models.Role{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           name,
	}
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create(userID, orgID, roleID uuid.UUID) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         userID,
		OrganizationID: orgID,
		RoleID:         roleID,
		EmployeeType:   models.EmployeeTypeFullTime,
		IsActive:       true,
	}
}

// AsOwner marks the membership as the organization owner
func (f *MembershipFactory) AsOwner(userID, orgID, roleID uuid.UUID) *models.Membership {
	m := f.Create(userID, orgID, roleID)
	m.IsOwner = true
	return m
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create(orgID uuid.UUID) *models.Group {
	id := uuid.New()
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           fmt.Sprintf("Test Group %s", id.String()[:8]),
		Description:    "A test group",
		IsActive:       true,
	}
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(orgID uuid.UUID, name string) *models.Group {
	group := f.Create(orgID)
	group.Name = name
	return group
}

// GroupMembershipFactory provides methods to create test GroupMembership data
type GroupMembershipFactory struct{}

// NewGroupMembershipFactory creates a new GroupMembershipFactory
func NewGroupMembershipFactory() *GroupMembershipFactory {
	return &GroupMembershipFactory{}
}

// Create creates a test GroupMembership with default values
func (f *GroupMembershipFactory) Create(groupID, userID uuid.UUID) *models.GroupMembership {
	return &models.GroupMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:  groupID,
		UserID:   userID,
		IsActive: true,
	}
}

// AsManager marks the membership as an approval manager
func (f *GroupMembershipFactory) AsManager(groupID, userID uuid.UUID) *models.GroupMembership {
	gm := f.Create(groupID, userID)
	gm.IsApprovalManager = true
	return gm
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a test Invitation expiring seven days out
func (f *InvitationFactory) Create(orgID, roleID uuid.UUID, email string) *models.Invitation {
	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Email:          email,
		RoleID:         roleID,
		Status:         models.InvitationStatusSent,
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
		IsActive:       true,
	}
}

// Expired creates an invitation whose expiry is already in the past
func (f *InvitationFactory) Expired(orgID, roleID uuid.UUID, email string) *models.Invitation {
	inv := f.Create(orgID, roleID, email)
	inv.ExpiresAt = time.Now().Add(-time.Hour)
	return inv
}

// LeaveTypeFactory provides methods to create test LeaveType data
type LeaveTypeFactory struct{}

// NewLeaveTypeFactory creates a new LeaveTypeFactory
func NewLeaveTypeFactory() *LeaveTypeFactory {
	return &LeaveTypeFactory{}
}

// Create creates an unlimited test LeaveType
func (f *LeaveTypeFactory) Create(orgID uuid.UUID) *models.LeaveType {
	id := uuid.New()
	return &models.LeaveType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:    orgID,
		Name:              fmt.Sprintf("Leave %s", id.String()[:8]),
		ShortCode:         id.String()[:6],
		AppliesToEveryone: true,
		EmployeeType:      models.EmployeeTypeFullTime,
		IsActive:          true,
	}
}

// Limited creates a limited test LeaveType with the given cadence and days
func (f *LeaveTypeFactory) Limited(orgID uuid.UUID, limitType models.LimitType, days float64) *models.LeaveType {
	lt := f.Create(orgID)
	lt.IsLimited = true
	lt.LimitType = &limitType
	lt.LimitDays = &days
	return lt
}

// FactorySet provides access to all factories
type FactorySet struct {
	User            *UserFactory
	Organization    *OrganizationFactory
	Role            *RoleFactory
	Membership      *MembershipFactory
	Group           *GroupFactory
	GroupMembership *GroupMembershipFactory
	Invitation      *InvitationFactory
	LeaveType       *LeaveTypeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:            NewUserFactory(),
		Organization:    NewOrganizationFactory(),
		Role:            NewRoleFactory(),
		Membership:      NewMembershipFactory(),
		Group:           NewGroupFactory(),
		GroupMembership: NewGroupMembershipFactory(),
		Invitation:      NewInvitationFactory(),
		LeaveType:       NewLeaveTypeFactory(),
	}
}
