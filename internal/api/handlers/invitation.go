package handlers

import (
	"net/http"

	"github.com/teamEPYC/leave-management-app-sub000/internal/auth"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles HTTP requests for invitations and joining
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

type joinRequest struct {
	InvitationID *uuid.UUID `json:"invitation_id,omitempty"`
}

// Invite invites an email into an organization
// @Summary Invite a user
// @Description Create an invitation for an email address; idempotent while an unexpired invitation for the same email exists
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation body service.InviteRequest true "Invitation data"
// @Success 200 {object} service.InvitationResult "Existing invitation returned"
// @Success 201 {object} service.InvitationResult "Successfully created invitation"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Security BearerAuth
// @Router /organizations/{id}/invitations [post]
func (h *InvitationHandler) Invite(c *gin.Context) {
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

	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Invite(callerID, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// Join joins the caller into an organization
// @Summary Join an organization
// @Description Join via an explicit invitation or by auto-discovering one for the caller's email
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param join body joinRequest false "Optional explicit invitation"
// @Success 200 {object} service.JoinResult "Join outcome"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired invitation"
// @Failure 404 {object} handlers.ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/join [post]
func (h *InvitationHandler) Join(c *gin.Context) {
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

	var req joinRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.service.Join(callerID, orgID, req.InvitationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
