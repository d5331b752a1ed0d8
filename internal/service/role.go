package service

import (
	"errors"
	"fmt"

	"github.com/teamEPYC/leave-management-app-sub000/internal/cache"
	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleInfo is the authorization primitive: the resolved role flags for a
// (user, organization) pair. HasAccess=false with all flags false is the
// normal outcome for a pair with no active membership, not an error.
type RoleInfo struct {
	HasAccess  bool `json:"has_access"`
	IsOwner    bool `json:"is_owner"`
	IsAdmin    bool `json:"is_admin"`
	IsEmployee bool `json:"is_employee"`
}

// CanAdminister reports whether the flags permit organization mutations
func (r RoleInfo) CanAdminister() bool {
	return r.IsOwner || r.IsAdmin
}

// RoleService resolves membership roles, with a bounded TTL cache in front of
// the store. Every membership mutation in this package goes through
// Invalidate so callers never act on stale flags for longer than the TTL.
type RoleService struct {
	membershipRepo repository.MembershipRepositoryInterface
	roleRepo       repository.RoleRepositoryInterface
	cache          *cache.TTLCache[RoleInfo]
}

// NewRoleService creates a new role service. The cache may be nil to resolve
// against the store on every call.
func NewRoleService(membershipRepo repository.MembershipRepositoryInterface, roleRepo repository.RoleRepositoryInterface, roleCache *cache.TTLCache[RoleInfo]) *RoleService {
	return &RoleService{
		membershipRepo: membershipRepo,
		roleRepo:       roleRepo,
		cache:          roleCache,
	}
}

func roleCacheKey(userID, orgID uuid.UUID) string {
	return userID.String() + "|" + orgID.String()
}

// ResolveRole reads the single active membership for the pair and derives
// the role flags. No side effects beyond the cache.
func (s *RoleService) ResolveRole(userID, organizationID uuid.UUID) (*RoleInfo, error) {
	if s.cache != nil {
		if info, ok := s.cache.Get(roleCacheKey(userID, organizationID)); ok {
			return &info, nil
		}
	}

	membership, err := s.membershipRepo.GetActiveByUserAndOrg(userID, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			info := RoleInfo{}
			if s.cache != nil {
				s.cache.Set(roleCacheKey(userID, organizationID), info)
			}
			return &info, nil
		}
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	info := RoleInfo{
		HasAccess:  true,
		IsOwner:    membership.IsOwner || membership.Role.Name == models.RoleOwner,
		IsAdmin:    membership.Role.Name == models.RoleAdmin,
		IsEmployee: membership.Role.Name == models.RoleEmployee,
	}

	if s.cache != nil {
		s.cache.Set(roleCacheKey(userID, organizationID), info)
	}
	return &info, nil
}

// RequireAdmin resolves the caller's role and rejects anyone who is not an
// owner or admin of the organization
func (s *RoleService) RequireAdmin(callerUserID, organizationID uuid.UUID) error {
	info, err := s.ResolveRole(callerUserID, organizationID)
	if err != nil {
		return err
	}
	if !info.CanAdminister() {
		return apperrors.ErrNotOrgAdmin
	}
	return nil
}

// Invalidate drops the cached flags for a pair after a membership mutation
func (s *RoleService) Invalidate(userID, organizationID uuid.UUID) {
	if s.cache != nil {
		s.cache.Del(roleCacheKey(userID, organizationID))
	}
}

// InvalidateAll drops every cached entry. Used when a mutation affects an
// unenumerable key set, e.g. deactivating a whole organization.
func (s *RoleService) InvalidateAll() {
	if s.cache != nil {
		s.cache.Clear()
	}
}
