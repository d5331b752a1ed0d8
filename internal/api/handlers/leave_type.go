package handlers

import (
	"net/http"

	"github.com/teamEPYC/leave-management-app-sub000/internal/auth"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveTypeHandler handles HTTP requests for leave types
type LeaveTypeHandler struct {
	service service.LeaveTypeServiceInterface
}

// NewLeaveTypeHandler creates a new leave type handler
func NewLeaveTypeHandler(service service.LeaveTypeServiceInterface) *LeaveTypeHandler {
	return &LeaveTypeHandler{service: service}
}

// CreateLeaveType creates a new leave type
// @Summary Create a leave type
// @Description Create a leave type with its limit contract and audience scope
// @Tags leave-types
// @Accept json
// @Produce json
// @Param leaveType body service.CreateLeaveTypeRequest true "Leave type data"
// @Success 201 {object} service.LeaveTypeResponse "Successfully created leave type"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit contract or scope"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 409 {object} handlers.ErrorResponse "Name or short code already taken"
// @Security BearerAuth
// @Router /leave-types [post]
func (h *LeaveTypeHandler) CreateLeaveType(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	var req service.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leaveType, err := h.service.Create(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, leaveType)
}

// GetLeaveType retrieves a leave type by ID
// @Summary Get leave type by ID
// @Description Get a specific leave type by its UUID
// @Tags leave-types
// @Produce json
// @Param id path string true "Leave type ID (UUID)"
// @Success 200 {object} service.LeaveTypeResponse "Successfully retrieved leave type"
// @Failure 404 {object} handlers.ErrorResponse "Leave type not found"
// @Security BearerAuth
// @Router /leave-types/{id} [get]
func (h *LeaveTypeHandler) GetLeaveType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	leaveType, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaveType)
}

// UpdateLeaveType updates a leave type
// @Summary Update a leave type
// @Description Update leave type fields; the group scope is replaced only when it actually changed
// @Tags leave-types
// @Accept json
// @Produce json
// @Param id path string true "Leave type ID (UUID)"
// @Param leaveType body service.UpdateLeaveTypeRequest true "Leave type data"
// @Success 200 {object} service.LeaveTypeResponse "Successfully updated leave type"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit contract or scope"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 409 {object} handlers.ErrorResponse "Name or short code already taken"
// @Security BearerAuth
// @Router /leave-types/{id} [put]
func (h *LeaveTypeHandler) UpdateLeaveType(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	var req service.UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leaveType, err := h.service.Update(callerID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaveType)
}

// DeactivateLeaveType soft-deletes a leave type
// @Summary Deactivate a leave type
// @Description Deactivate a leave type; its name and short code become reusable
// @Tags leave-types
// @Produce json
// @Param id path string true "Leave type ID (UUID)"
// @Success 204 "Leave type deactivated"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 404 {object} handlers.ErrorResponse "Leave type not found"
// @Security BearerAuth
// @Router /leave-types/{id} [delete]
func (h *LeaveTypeHandler) DeactivateLeaveType(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave type ID"})
		return
	}

	if err := h.service.Deactivate(callerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListLeaveTypes lists leave types of an organization
// @Summary List leave types
// @Description List active leave types of an organization, paginated
// @Tags leave-types
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LeaveTypeListResponse "Successfully retrieved leave types"
// @Failure 400 {object} handlers.ErrorResponse "Invalid organization ID"
// @Security BearerAuth
// @Router /organizations/{id}/leave-types [get]
func (h *LeaveTypeHandler) ListLeaveTypes(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	page, pageSize := parsePagination(c)
	leaveTypes, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaveTypes)
}
