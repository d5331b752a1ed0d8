package handlers

import (
	"net/http"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/auth"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveBalanceHandler handles HTTP requests for entitlement runs and
// balance adjustments
type LeaveBalanceHandler struct {
	service     service.EntitlementServiceInterface
	roleService service.RoleServiceInterface
}

// NewLeaveBalanceHandler creates a new leave balance handler
func NewLeaveBalanceHandler(service service.EntitlementServiceInterface, roleService service.RoleServiceInterface) *LeaveBalanceHandler {
	return &LeaveBalanceHandler{service: service, roleService: roleService}
}

type calculateRequest struct {
	LeaveTypeID uuid.UUID `json:"leave_type_id" binding:"required"`
	PeriodStart time.Time `json:"period_start" binding:"required"`
	PeriodEnd   time.Time `json:"period_end" binding:"required"`
}

// Calculate runs entitlement calculation for a leave type over a period
// @Summary Calculate entitlements
// @Description Resolve per-user allocations for a leave type and upsert balance rows for the period
// @Tags leave-balances
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param run body calculateRequest true "Calculation parameters"
// @Success 200 {object} service.CalculationSummary "Calculation outcome, including per-user failures"
// @Failure 400 {object} handlers.ErrorResponse "Invalid period or leave type"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Security BearerAuth
// @Router /organizations/{id}/entitlements/calculate [post]
func (h *LeaveBalanceHandler) Calculate(c *gin.Context) {
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

	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.roleService.RequireAdmin(callerID, orgID); err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.service.Calculate(orgID, req.LeaveTypeID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// AddAdjustment grants extra days against an existing balance
// @Summary Add a balance adjustment
// @Description Record an additive adjustment against a user's balance row
// @Tags leave-balances
// @Accept json
// @Produce json
// @Param id path string true "Balance ID (UUID)"
// @Param adjustment body service.AddAdjustmentRequest true "Adjustment data"
// @Success 204 "Adjustment recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid adjustment"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks admin access"
// @Failure 404 {object} handlers.ErrorResponse "Balance not found"
// @Security BearerAuth
// @Router /leave-balances/{id}/adjustments [post]
func (h *LeaveBalanceHandler) AddAdjustment(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondMissingCaller(c)
		return
	}

	balanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid balance ID"})
		return
	}

	var req service.AddAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddAdjustment(callerID, balanceID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
