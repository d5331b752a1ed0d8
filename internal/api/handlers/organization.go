package handlers

import (
	"net/http"

	"github.com/teamEPYC/leave-management-app-sub000/internal/auth"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service     service.OrganizationServiceInterface
	roleService service.RoleServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, roleService service.RoleServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service, roleService: roleService}
}

// CreateOrganization creates a new organization
// @Summary Create an organization
// @Description Create an organization; the caller becomes its owner
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Domain already claimed"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.service.Create(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization retrieves an organization by ID
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 404 {object} handlers.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetMyRole resolves the caller's access level in an organization
// @Summary Get caller's role
// @Description Resolve the caller's access and role flags within the organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.RoleInfo "Resolved role flags"
// @Failure 400 {object} handlers.ErrorResponse "Invalid organization ID"
// @Security BearerAuth
// @Router /organizations/{id}/role [get]
func (h *OrganizationHandler) GetMyRole(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	info, err := h.roleService.ResolveRole(callerID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// DeactivateOrganization soft-deletes an organization
// @Summary Deactivate organization
// @Description Deactivate an organization; only its owner may do this
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deactivated"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeactivateOrganization(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	if err := h.service.Deactivate(callerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
