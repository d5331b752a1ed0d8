package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupService handles approval groups and the reconciliation of their
// membership against caller-supplied manager/member sets
type GroupService struct {
	repo           repository.GroupRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	roleService    *RoleService
	validator      *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, roleService *RoleService, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:           repo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		roleService:    roleService,
		validator:      validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	OrganizationID     uuid.UUID   `json:"organization_id" validate:"required"`
	Name               string      `json:"name" validate:"required,min=1,max=100"`
	Description        string      `json:"description"`
	Icon               string      `json:"icon" validate:"max=200"`
	ApprovalManagerIDs []uuid.UUID `json:"approval_manager_ids"`
	MemberIDs          []uuid.UUID `json:"member_ids"`
}

// EditGroupRequest represents the request to edit a group and reconcile its
// membership to the given sets
type EditGroupRequest struct {
	Name               string      `json:"name" validate:"required,min=1,max=100"`
	Description        string      `json:"description"`
	Icon               string      `json:"icon" validate:"max=200"`
	ApprovalManagerIDs []uuid.UUID `json:"approval_manager_ids"`
	MemberIDs          []uuid.UUID `json:"member_ids"`
}

// GroupMemberResponse is one user's standing in a group
type GroupMemberResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	IsApprovalManager bool      `json:"is_approval_manager"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID             uuid.UUID             `json:"id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Icon           string                `json:"icon"`
	Members        []GroupMemberResponse `json:"members"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups   []GroupResponse `json:"groups"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a group with its initial manager/member split. All
// referenced users must hold active membership in the organization; manager
// status wins for users named in both lists.
func (s *GroupService) Create(callerUserID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetActiveByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	if err := s.roleService.RequireAdmin(callerUserID, req.OrganizationID); err != nil {
		return nil, err
	}

	desired := DesiredFromSets(req.ApprovalManagerIDs, req.MemberIDs)
	if err := s.validateOrgMembers(req.OrganizationID, desired); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetActiveByName(req.OrganizationID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupExists
	}

	group := &models.Group{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		Icon:           req.Icon,
		IsActive:       true,
	}
	memberships := membershipRowsFromDesired(desired)

	if err := s.repo.CreateWithMemberships(group, memberships); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrGroupExists
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.toResponse(group, memberships), nil
}

// Edit updates the group metadata and reconciles its membership to the
// desired sets. Removals, role changes and additions commit atomically, in
// that order; a second call with the same sets writes nothing.
func (s *GroupService) Edit(callerUserID, groupID uuid.UUID, req *EditGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.getActiveGroup(groupID)
	if err != nil {
		return nil, err
	}

	if err := s.roleService.RequireAdmin(callerUserID, group.OrganizationID); err != nil {
		return nil, err
	}

	desired := DesiredFromSets(req.ApprovalManagerIDs, req.MemberIDs)
	if err := s.validateOrgMembers(group.OrganizationID, desired); err != nil {
		return nil, err
	}

	if req.Name != group.Name {
		collision, err := s.repo.GetActiveByName(group.OrganizationID, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing group: %w", err)
		}
		if collision != nil && collision.ID != groupID {
			return nil, apperrors.ErrGroupExists
		}
	}

	rows, err := s.repo.GetActiveMemberships(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group memberships: %w", err)
	}
	existing := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		existing[row.UserID] = row.IsApprovalManager
	}

	diff := DiffMemberships(existing, desired)
	if !diff.Empty() {
		additions := membershipRowsFromDesired(diff.ToAdd)
		if err := s.repo.ApplyReconciliation(groupID, diff.ToRemove, diff.ToRoleChange, additions); err != nil {
			return nil, fmt.Errorf("failed to reconcile group membership: %w", err)
		}
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"icon":        req.Icon,
	}
	if err := s.repo.Update(groupID, updates); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	updated, err := s.repo.GetByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated group: %w", err)
	}
	return s.toResponse(updated, membershipRowsFromDesired(desired)), nil
}

// Deactivate soft-deactivates a group and its membership rows
func (s *GroupService) Deactivate(callerUserID, groupID uuid.UUID) error {
	group, err := s.getActiveGroup(groupID)
	if err != nil {
		return err
	}

	if err := s.roleService.RequireAdmin(callerUserID, group.OrganizationID); err != nil {
		return err
	}

	if err := s.repo.Deactivate(groupID); err != nil {
		return fmt.Errorf("failed to deactivate group: %w", err)
	}
	return nil
}

// GetByID retrieves a group with its active membership
func (s *GroupService) GetByID(groupID uuid.UUID) (*GroupResponse, error) {
	group, err := s.getActiveGroup(groupID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.GetActiveMemberships(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group memberships: %w", err)
	}
	return s.toResponse(group, rows), nil
}

// GetByOrganization retrieves active groups for an organization with pagination
func (s *GroupService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*GroupListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.orgRepo.GetActiveByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	offset := (page - 1) * pageSize
	groups, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = *s.toResponse(&group, nil)
	}

	return &GroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *GroupService) getActiveGroup(groupID uuid.UUID) (*models.Group, error) {
	group, err := s.repo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if !group.IsActive {
		return nil, apperrors.ErrGroupNotFound
	}
	return group, nil
}

// validateOrgMembers rejects any desired user without an active membership
// in the organization, listing every offender. Runs before the first write.
func (s *GroupService) validateOrgMembers(organizationID uuid.UUID, desired map[uuid.UUID]bool) error {
	if len(desired) == 0 {
		return nil
	}
	userIDs := make([]uuid.UUID, 0, len(desired))
	for userID := range desired {
		userIDs = append(userIDs, userID)
	}

	known, err := s.membershipRepo.FilterActiveUserIDs(organizationID, userIDs)
	if err != nil {
		return fmt.Errorf("failed to validate group members: %w", err)
	}

	knownSet := make(map[uuid.UUID]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}

	var unknown []uuid.UUID
	for _, id := range userIDs {
		if _, ok := knownSet[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Slice(unknown, func(i, j int) bool { return unknown[i].String() < unknown[j].String() })
		return apperrors.NewInvalidUserError(unknown)
	}
	return nil
}

func membershipRowsFromDesired(desired map[uuid.UUID]bool) []models.GroupMembership {
	rows := make([]models.GroupMembership, 0, len(desired))
	for userID, isManager := range desired {
		rows = append(rows, models.GroupMembership{
			UserID:            userID,
			IsApprovalManager: isManager,
			IsActive:          true,
		})
	}
	return rows
}

func (s *GroupService) toResponse(group *models.Group, rows []models.GroupMembership) *GroupResponse {
	members := make([]GroupMemberResponse, len(rows))
	for i, row := range rows {
		members[i] = GroupMemberResponse{
			UserID:            row.UserID,
			IsApprovalManager: row.IsApprovalManager,
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UserID.String() < members[j].UserID.String() })

	return &GroupResponse{
		ID:             group.ID,
		OrganizationID: group.OrganizationID,
		Name:           group.Name,
		Description:    group.Description,
		Icon:           group.Icon,
		Members:        members,
		CreatedAt:      group.CreatedAt,
		UpdatedAt:      group.UpdatedAt,
	}
}
