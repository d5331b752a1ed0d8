package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinType records how a user ended up in the organization
type JoinType string

const (
	JoinTypeInvite JoinType = "INVITE"
	JoinTypeDomain JoinType = "DOMAIN"
)

// InvitationService implements the invitation state machine:
// SENT -> ACCEPT, or SENT -> implicitly expired once past expires_at.
type InvitationService struct {
	repo           repository.InvitationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	roleRepo       repository.RoleRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	roleService    *RoleService
	invitationTTL  time.Duration
	validator      *validator.Validate
	now            func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	repo repository.InvitationRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	roleService *RoleService,
	invitationTTL time.Duration,
	validator *validator.Validate,
) *InvitationService {
	return &InvitationService{
		repo:           repo,
		membershipRepo: membershipRepo,
		orgRepo:        orgRepo,
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		roleService:    roleService,
		invitationTTL:  invitationTTL,
		validator:      validator,
		now:            time.Now,
	}
}

// InviteRequest represents the request to invite an email into an organization
type InviteRequest struct {
	Email  string     `json:"email" validate:"required,email,max=255"`
	RoleID *uuid.UUID `json:"role_id,omitempty"`
}

// InvitationResult represents the outcome of an invite call
type InvitationResult struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	RoleID        uuid.UUID `json:"role_id"`
	ExpiresAt     time.Time `json:"expires_at"`
	AlreadyExists bool      `json:"already_exists"`
}

// JoinResult represents the outcome of a join call
type JoinResult struct {
	AlreadyMember bool      `json:"already_member"`
	JoinType      JoinType  `json:"join_type"`
	MembershipID  uuid.UUID `json:"membership_id,omitempty"`
}

// Invite creates an invitation, or returns the existing active one for the
// same (organization, email) unchanged. Idempotent per org+email while an
// unexpired SENT invitation exists; the store's unique index settles the
// race when two callers invite at once.
func (s *InvitationService) Invite(callerUserID, organizationID uuid.UUID, req *InviteRequest) (*InvitationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetActiveByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	if err := s.roleService.RequireAdmin(callerUserID, organizationID); err != nil {
		return nil, err
	}

	roleID, err := s.resolveInviteRole(organizationID, req.RoleID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)
	now := s.now()

	existing, err := s.repo.GetActiveByOrgAndEmail(organizationID, email, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}
	if existing != nil {
		return s.toResult(existing, true), nil
	}

	invitation := &models.Invitation{
		OrganizationID: organizationID,
		Email:          email,
		RoleID:         roleID,
		Status:         models.InvitationStatusSent,
		ExpiresAt:      now.Add(s.invitationTTL),
		IsActive:       true,
	}
	if err := s.repo.Create(invitation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent invite; hand back the winner.
			winner, lookupErr := s.repo.GetActiveByOrgAndEmail(organizationID, email, now)
			if lookupErr != nil {
				return nil, fmt.Errorf("failed to load concurrent invitation: %w", lookupErr)
			}
			return s.toResult(winner, true), nil
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return s.toResult(invitation, false), nil
}

// Join adds the caller to the organization. An already-member caller gets an
// idempotent success with no writes. An explicit invitation id must resolve
// to a SENT, unexpired invitation for this organization and the caller's
// email; otherwise the caller's email is matched against any active
// invitation, and failing that a default EMPLOYEE membership is granted.
func (s *InvitationService) Join(callerUserID, organizationID uuid.UUID, invitationID *uuid.UUID) (*JoinResult, error) {
	if _, err := s.orgRepo.GetActiveByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	joinType := JoinTypeDomain
	if invitationID != nil {
		joinType = JoinTypeInvite
	}

	info, err := s.roleService.ResolveRole(callerUserID, organizationID)
	if err != nil {
		return nil, err
	}
	if info.HasAccess {
		return &JoinResult{AlreadyMember: true, JoinType: joinType}, nil
	}

	user, err := s.userRepo.GetByID(callerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := s.now()
	var invitation *models.Invitation

	if invitationID != nil {
		invitation, err = s.repo.GetByID(*invitationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewInvalidInvitationError("invitation does not exist")
			}
			return nil, fmt.Errorf("failed to load invitation: %w", err)
		}
		if invitation.OrganizationID != organizationID {
			return nil, apperrors.NewInvalidInvitationError("invitation belongs to another organization")
		}
		if !strings.EqualFold(invitation.Email, user.Email) {
			return nil, apperrors.NewInvalidInvitationError("invitation was issued to a different email")
		}
		if !invitation.IsConsumable(now) {
			return nil, apperrors.NewInvalidInvitationError("invitation is expired or already used")
		}
	} else {
		invitation, err = s.repo.GetActiveByOrgAndEmail(organizationID, user.Email, now)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to discover invitation: %w", err)
		}
	}

	var membership *models.Membership
	if invitation != nil {
		membership = &models.Membership{
			UserID:         callerUserID,
			OrganizationID: organizationID,
			RoleID:         invitation.RoleID,
			IsOwner:        false,
			EmployeeType:   models.EmployeeTypeFullTime,
			IsActive:       true,
		}
		if err := s.repo.AcceptWithMembership(invitation.ID, membership); err != nil {
			return nil, fmt.Errorf("failed to accept invitation: %w", err)
		}
	} else {
		employeeRole, err := s.roleRepo.GetByName(organizationID, models.RoleEmployee)
		if err != nil {
			return nil, fmt.Errorf("failed to load default role: %w", err)
		}
		membership = &models.Membership{
			UserID:         callerUserID,
			OrganizationID: organizationID,
			RoleID:         employeeRole.ID,
			IsOwner:        false,
			EmployeeType:   models.EmployeeTypeFullTime,
			IsActive:       true,
		}
		if err := s.membershipRepo.Create(membership); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent join beat us; the caller is a member now.
				return &JoinResult{AlreadyMember: true, JoinType: joinType}, nil
			}
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}
	}

	s.roleService.Invalidate(callerUserID, organizationID)
	return &JoinResult{AlreadyMember: false, JoinType: joinType, MembershipID: membership.ID}, nil
}

// resolveInviteRole validates an explicit role id against the organization,
// defaulting to EMPLOYEE when none is given
func (s *InvitationService) resolveInviteRole(organizationID uuid.UUID, roleID *uuid.UUID) (uuid.UUID, error) {
	if roleID == nil {
		role, err := s.roleRepo.GetByName(organizationID, models.RoleEmployee)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to load default role: %w", err)
		}
		return role.ID, nil
	}

	role, err := s.roleRepo.GetByID(*roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrRoleNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to load role: %w", err)
	}
	if role.OrganizationID != organizationID {
		return uuid.Nil, apperrors.NewValidationError("role_id", "role belongs to another organization")
	}
	return role.ID, nil
}

func (s *InvitationService) toResult(invitation *models.Invitation, alreadyExists bool) *InvitationResult {
	return &InvitationResult{
		ID:            invitation.ID,
		Email:         invitation.Email,
		RoleID:        invitation.RoleID,
		ExpiresAt:     invitation.ExpiresAt,
		AlreadyExists: alreadyExists,
	}
}
