package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveTypeService validates and persists leave-type rule sets
type LeaveTypeService struct {
	repo        repository.LeaveTypeRepositoryInterface
	orgRepo     repository.OrganizationRepositoryInterface
	groupRepo   repository.GroupRepositoryInterface
	roleService *RoleService
	validator   *validator.Validate
}

// NewLeaveTypeService creates a new leave type service
func NewLeaveTypeService(repo repository.LeaveTypeRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, groupRepo repository.GroupRepositoryInterface, roleService *RoleService, validator *validator.Validate) *LeaveTypeService {
	return &LeaveTypeService{
		repo:        repo,
		orgRepo:     orgRepo,
		groupRepo:   groupRepo,
		roleService: roleService,
		validator:   validator,
	}
}

// CreateLeaveTypeRequest represents the request to create a leave type
type CreateLeaveTypeRequest struct {
	OrganizationID    uuid.UUID   `json:"organization_id" validate:"required"`
	Name              string      `json:"name" validate:"required,min=1,max=100"`
	ShortCode         string      `json:"short_code" validate:"required,min=1,max=20"`
	IsLimited         bool        `json:"is_limited"`
	LimitType         *string     `json:"limit_type,omitempty"`
	LimitDays         *float64    `json:"limit_days,omitempty"`
	AppliesToEveryone bool        `json:"applies_to_everyone"`
	GroupIDs          []uuid.UUID `json:"group_ids"`
	EmployeeType      string      `json:"employee_type"`
}

// UpdateLeaveTypeRequest represents the request to update a leave type
type UpdateLeaveTypeRequest struct {
	Name              string      `json:"name" validate:"required,min=1,max=100"`
	ShortCode         string      `json:"short_code" validate:"required,min=1,max=20"`
	IsLimited         bool        `json:"is_limited"`
	LimitType         *string     `json:"limit_type,omitempty"`
	LimitDays         *float64    `json:"limit_days,omitempty"`
	AppliesToEveryone bool        `json:"applies_to_everyone"`
	GroupIDs          []uuid.UUID `json:"group_ids"`
	EmployeeType      string      `json:"employee_type"`
}

// LeaveTypeResponse represents the response for leave type operations
type LeaveTypeResponse struct {
	ID                uuid.UUID           `json:"id"`
	OrganizationID    uuid.UUID           `json:"organization_id"`
	Name              string              `json:"name"`
	ShortCode         string              `json:"short_code"`
	IsLimited         bool                `json:"is_limited"`
	LimitType         *models.LimitType   `json:"limit_type,omitempty"`
	LimitDays         *float64            `json:"limit_days,omitempty"`
	AppliesToEveryone bool                `json:"applies_to_everyone"`
	GroupIDs          []uuid.UUID         `json:"group_ids"`
	EmployeeType      models.EmployeeType `json:"employee_type"`
	IsActive          bool                `json:"is_active"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// LeaveTypeListResponse represents a paginated list of leave types
type LeaveTypeListResponse struct {
	LeaveTypes []LeaveTypeResponse `json:"leave_types"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a leave type. The limited/unlimited contract is normalized
// through the LeaveLimit union: unlimited input silently drops any limit
// columns instead of rejecting them.
func (s *LeaveTypeService) Create(callerUserID uuid.UUID, req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error) {
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

	limit, err := normalizeLimit(req.IsLimited, req.LimitType, req.LimitDays)
	if err != nil {
		return nil, err
	}

	employeeType, err := normalizeEmployeeType(req.EmployeeType)
	if err != nil {
		return nil, err
	}

	groupIDs, err := s.normalizeScope(req.OrganizationID, req.AppliesToEveryone, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	collision, err := s.repo.FindActiveCollision(req.OrganizationID, req.Name, req.ShortCode, uuid.Nil)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing leave type: %w", err)
	}
	if collision != nil {
		return nil, apperrors.ErrLeaveTypeExists
	}

	limitType, limitDays := limit.Columns()
	leaveType := &models.LeaveType{
		OrganizationID:    req.OrganizationID,
		Name:              req.Name,
		ShortCode:         req.ShortCode,
		IsLimited:         limit.IsLimited(),
		LimitType:         limitType,
		LimitDays:         limitDays,
		AppliesToEveryone: req.AppliesToEveryone,
		EmployeeType:      employeeType,
		IsActive:          true,
	}
	if err := s.repo.CreateWithGroups(leaveType, groupIDs); err != nil {
		return nil, fmt.Errorf("failed to create leave type: %w", err)
	}

	return s.toResponse(leaveType, groupIDs), nil
}

// Update updates a leave type. The group scope rows are replaced only when
// the desired set differs from the stored one, so unchanged associations and
// their metadata survive. Switching appliesToEveryone on clears the scope.
func (s *LeaveTypeService) Update(callerUserID, id uuid.UUID, req *UpdateLeaveTypeRequest) (*LeaveTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	leaveType, err := s.getActiveLeaveType(id)
	if err != nil {
		return nil, err
	}

	if err := s.roleService.RequireAdmin(callerUserID, leaveType.OrganizationID); err != nil {
		return nil, err
	}

	limit, err := normalizeLimit(req.IsLimited, req.LimitType, req.LimitDays)
	if err != nil {
		return nil, err
	}

	employeeType, err := normalizeEmployeeType(req.EmployeeType)
	if err != nil {
		return nil, err
	}

	desiredGroups, err := s.normalizeScope(leaveType.OrganizationID, req.AppliesToEveryone, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	collision, err := s.repo.FindActiveCollision(leaveType.OrganizationID, req.Name, req.ShortCode, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing leave type: %w", err)
	}
	if collision != nil {
		return nil, apperrors.ErrLeaveTypeExists
	}

	currentGroups, err := s.repo.GetActiveGroupIDs(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load group scope: %w", err)
	}

	var replaceGroups *[]uuid.UUID
	if !sameIDSet(currentGroups, desiredGroups) {
		replaceGroups = &desiredGroups
	}

	limitType, limitDays := limit.Columns()
	updates := map[string]interface{}{
		"name":                req.Name,
		"short_code":          req.ShortCode,
		"is_limited":          limit.IsLimited(),
		"limit_type":          limitType,
		"limit_days":          limitDays,
		"applies_to_everyone": req.AppliesToEveryone,
		"employee_type":       employeeType,
	}
	if err := s.repo.UpdateWithGroups(id, updates, replaceGroups); err != nil {
		return nil, fmt.Errorf("failed to update leave type: %w", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated leave type: %w", err)
	}
	return s.toResponse(updated, desiredGroups), nil
}

// Deactivate soft-deactivates a leave type and its scope rows. Materialized
// balances stay as they are.
func (s *LeaveTypeService) Deactivate(callerUserID, id uuid.UUID) error {
	leaveType, err := s.getActiveLeaveType(id)
	if err != nil {
		return err
	}

	if err := s.roleService.RequireAdmin(callerUserID, leaveType.OrganizationID); err != nil {
		return err
	}

	if err := s.repo.Deactivate(id); err != nil {
		return fmt.Errorf("failed to deactivate leave type: %w", err)
	}
	return nil
}

// GetByID retrieves a leave type with its group scope
func (s *LeaveTypeService) GetByID(id uuid.UUID) (*LeaveTypeResponse, error) {
	leaveType, err := s.getActiveLeaveType(id)
	if err != nil {
		return nil, err
	}
	groupIDs, err := s.repo.GetActiveGroupIDs(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load group scope: %w", err)
	}
	return s.toResponse(leaveType, groupIDs), nil
}

// GetByOrganization retrieves active leave types for an organization with
// pagination
func (s *LeaveTypeService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*LeaveTypeListResponse, error) {
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
	leaveTypes, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave types: %w", err)
	}

	responses := make([]LeaveTypeResponse, len(leaveTypes))
	for i, lt := range leaveTypes {
		responses[i] = *s.toResponse(&lt, nil)
	}

	return &LeaveTypeListResponse{
		LeaveTypes: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *LeaveTypeService) getActiveLeaveType(id uuid.UUID) (*models.LeaveType, error) {
	leaveType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}
	if !leaveType.IsActive {
		return nil, apperrors.ErrLeaveTypeNotFound
	}
	return leaveType, nil
}

// normalizeScope validates the group set against the organization, dropping
// it entirely when the type applies to everyone
func (s *LeaveTypeService) normalizeScope(organizationID uuid.UUID, appliesToEveryone bool, groupIDs []uuid.UUID) ([]uuid.UUID, error) {
	if appliesToEveryone {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(groupIDs))
	deduped := make([]uuid.UUID, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		if _, ok := seen[groupID]; ok {
			continue
		}
		seen[groupID] = struct{}{}

		group, err := s.groupRepo.GetByID(groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to verify group: %w", err)
		}
		if !group.IsActive {
			return nil, apperrors.ErrGroupNotFound
		}
		if group.OrganizationID != organizationID {
			return nil, apperrors.NewValidationError("group_ids", "group belongs to another organization")
		}
		deduped = append(deduped, groupID)
	}
	return deduped, nil
}

// normalizeLimit folds the caller's nullable pair into the LeaveLimit union.
// Limited input without a valid type and positive days is rejected;
// unlimited input is normalized, never rejected.
func normalizeLimit(isLimited bool, limitType *string, limitDays *float64) (models.LeaveLimit, error) {
	if !isLimited {
		return models.UnlimitedLeave(), nil
	}
	if limitType == nil || limitDays == nil {
		return models.LeaveLimit{}, apperrors.NewValidationError("limit_type", "limited leave types require limit_type and limit_days")
	}
	limit, err := models.LimitedLeave(models.LimitType(*limitType), *limitDays)
	if err != nil {
		return models.LeaveLimit{}, apperrors.NewValidationError("limit_days", err.Error())
	}
	return limit, nil
}

func normalizeEmployeeType(raw string) (models.EmployeeType, error) {
	if raw == "" {
		return models.EmployeeTypeFullTime, nil
	}
	employeeType := models.EmployeeType(raw)
	if !employeeType.IsValid() {
		return "", apperrors.NewValidationError("employee_type", "must be FULL_TIME or PART_TIME")
	}
	return employeeType, nil
}

func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func (s *LeaveTypeService) toResponse(leaveType *models.LeaveType, groupIDs []uuid.UUID) *LeaveTypeResponse {
	return &LeaveTypeResponse{
		ID:                leaveType.ID,
		OrganizationID:    leaveType.OrganizationID,
		Name:              leaveType.Name,
		ShortCode:         leaveType.ShortCode,
		IsLimited:         leaveType.IsLimited,
		LimitType:         leaveType.LimitType,
		LimitDays:         leaveType.LimitDays,
		AppliesToEveryone: leaveType.AppliesToEveryone,
		GroupIDs:          groupIDs,
		EmployeeType:      leaveType.EmployeeType,
		IsActive:          leaveType.IsActive,
		CreatedAt:         leaveType.CreatedAt,
		UpdatedAt:         leaveType.UpdatedAt,
	}
}
