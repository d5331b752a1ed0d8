package handlers

import (
	"net/http"

	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the structured failure shape returned by every endpoint
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// respondError maps the engine's error taxonomy onto transport status codes
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeUnauthorized:
		status = http.StatusForbidden
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeAlreadyExists:
		status = http.StatusConflict
	case apperrors.CodeInvalidRequest, apperrors.CodeInvalidUser, apperrors.CodeInvalidInvitation:
		status = http.StatusBadRequest
	}

	c.JSON(status, ErrorResponse{
		ErrorCode: string(code),
		Message:   err.Error(),
		Retryable: code == apperrors.CodeStoreError,
	})
}

func respondMissingCaller(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		ErrorCode: string(apperrors.CodeUnauthorized),
		Message:   "caller identity missing from request context",
	})
}
