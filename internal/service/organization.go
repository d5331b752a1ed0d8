package service

import (
	"encoding/json"
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

// OrganizationService handles the tenant lifecycle
type OrganizationService struct {
	repo        repository.OrganizationRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	roleService *RoleService
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, roleService *RoleService, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		userRepo:    userRepo,
		roleService: roleService,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Domain       string          `json:"domain" validate:"required,max=100"`
	Settings     json.RawMessage `json:"settings" swaggertype:"object"`
	EmployeeType string          `json:"employee_type"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Domain    string          `json:"domain"`
	Settings  json.RawMessage `json:"settings" swaggertype:"object"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Create creates an organization for the calling user. The creator becomes
// the single owner membership; the three fixed roles are seeded in the same
// transaction.
func (s *OrganizationService) Create(creatorUserID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(creatorUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify creator: %w", err)
	}

	employeeType := models.EmployeeTypeFullTime
	if req.EmployeeType != "" {
		employeeType = models.EmployeeType(req.EmployeeType)
		if !employeeType.IsValid() {
			return nil, apperrors.NewValidationError("employee_type", "must be FULL_TIME or PART_TIME")
		}
	}

	org := &models.Organization{
		Name:     req.Name,
		Domain:   strings.ToLower(req.Domain),
		Settings: req.Settings,
		IsActive: true,
	}
	if err := s.repo.CreateWithOwner(org, creatorUserID, employeeType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.roleService.Invalidate(creatorUserID, org.ID)
	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// Deactivate soft-deactivates an organization and all of its memberships.
// Only the owner may do this.
func (s *OrganizationService) Deactivate(callerUserID, id uuid.UUID) error {
	if _, err := s.repo.GetActiveByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	info, err := s.roleService.ResolveRole(callerUserID, id)
	if err != nil {
		return err
	}
	if !info.IsOwner {
		return apperrors.NewAuthorizationError("only the organization owner may deactivate it")
	}

	if err := s.repo.Deactivate(id); err != nil {
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}

	// Membership rows changed for every member; the affected key set is
	// unknown here.
	s.roleService.InvalidateAll()
	return nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Domain:    org.Domain,
		Settings:  org.Settings,
		IsActive:  org.IsActive,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
