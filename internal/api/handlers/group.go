package handlers

import (
	"net/http"
	"strconv"

	"github.com/teamEPYC/leave-management-app-sub000/internal/auth"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Description Create a group with its initial manager and member sets
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or members outside the organization"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 409 {object} handlers.ErrorResponse "Group name already taken"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.Create(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup retrieves a group by ID
// @Summary Get group by ID
// @Description Get a specific group and its membership by UUID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 400 {object} handlers.ErrorResponse "Invalid group ID"
// @Failure 404 {object} handlers.ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	group, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// EditGroup edits a group and reconciles its membership
// @Summary Edit a group
// @Description Update group fields and reconcile membership to the given manager and member sets
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.EditGroupRequest true "Group data"
// @Success 200 {object} service.GroupResponse "Successfully updated group"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or members outside the organization"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 409 {object} handlers.ErrorResponse "Group name already taken"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) EditGroup(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	var req service.EditGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.Edit(callerID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeactivateGroup soft-deletes a group
// @Summary Deactivate a group
// @Description Deactivate a group and retire its memberships
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Group deactivated"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 404 {object} handlers.ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeactivateGroup(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return
	}

	if err := h.service.Deactivate(callerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListGroups lists groups of an organization
// @Summary List groups
// @Description List active groups of an organization, paginated
// @Tags groups
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.GroupListResponse "Successfully retrieved groups"
// @Failure 400 {object} handlers.ErrorResponse "Invalid organization ID"
// @Security BearerAuth
// @Router /organizations/{id}/groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	page, pageSize := parsePagination(c)
	groups, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
