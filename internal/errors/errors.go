package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Code classifies engine failures for the request layer. Callers map codes to
// transport status; none of these are retryable except StoreError, which is
// surfaced as-is for the caller to decide.
type Code string

const (
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodeInvalidRequest    Code = "INVALID_REQUEST"
	CodeInvalidUser       Code = "INVALID_USER"
	CodeInvalidInvitation Code = "INVALID_INVITATION"
	CodeStoreError        Code = "STORE_ERROR"
)

// NotFoundError represents an error when an entity is not found or inactive
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed request (bad limit combination,
// cross-organization reference, unknown enum value)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents a caller lacking the required role
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidUserError lists referenced user ids that hold no active membership
// in the organization
type InvalidUserError struct {
	UserIDs []uuid.UUID
}

func (e *InvalidUserError) Error() string {
	ids := make([]string, len(e.UserIDs))
	for i, id := range e.UserIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("users not in organization: %s", strings.Join(ids, ", "))
}

// InvalidInvitationError represents an expired, mismatched, or consumed
// invitation
type InvalidInvitationError struct {
	Reason string
}

func (e *InvalidInvitationError) Error() string {
	return fmt.Sprintf("invalid invitation: %s", e.Reason)
}

// StoreError wraps an underlying persistence failure
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrRoleNotFound         = &NotFoundError{Entity: "role"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrGroupNotFound        = &NotFoundError{Entity: "group"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrLeaveTypeNotFound    = &NotFoundError{Entity: "leave type"}
	ErrLeaveBalanceNotFound = &NotFoundError{Entity: "leave balance"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this domain"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrGroupExists        = &AlreadyExistsError{Entity: "group", Context: "with this name in the organization"}
	ErrLeaveTypeExists    = &AlreadyExistsError{Entity: "leave type", Context: "with this name or short code in the organization"}
)

// Authorization Errors
var (
	ErrNotOrgAdmin = &AuthorizationError{Message: "caller must be an owner or admin of the organization"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidUser checks if an error is an InvalidUserError
func IsInvalidUser(err error) bool {
	var invalidUserErr *InvalidUserError
	return errors.As(err, &invalidUserErr)
}

// IsInvalidInvitation checks if an error is an InvalidInvitationError
func IsInvalidInvitation(err error) bool {
	var invitationErr *InvalidInvitationError
	return errors.As(err, &invitationErr)
}

// CodeOf classifies any engine error into the taxonomy. Struct-tag failures
// from the request validator count as invalid requests alongside the typed
// ValidationError; anything unrecognized is a store error.
func CodeOf(err error) Code {
	var fieldErrs validator.ValidationErrors
	switch {
	case IsAuthorization(err):
		return CodeUnauthorized
	case IsNotFound(err):
		return CodeNotFound
	case IsAlreadyExists(err):
		return CodeAlreadyExists
	case IsInvalidUser(err):
		return CodeInvalidUser
	case IsInvalidInvitation(err):
		return CodeInvalidInvitation
	case IsValidation(err), errors.As(err, &fieldErrs):
		return CodeInvalidRequest
	default:
		return CodeStoreError
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidUserError creates a new InvalidUserError for the offending ids
func NewInvalidUserError(userIDs []uuid.UUID) error {
	return &InvalidUserError{UserIDs: userIDs}
}

// NewInvalidInvitationError creates a new InvalidInvitationError
func NewInvalidInvitationError(reason string) error {
	return &InvalidInvitationError{Reason: reason}
}

// NewStoreError wraps a persistence failure with the operation that hit it
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
