package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. It is also
// returned when an entity exists but belongs to a foreign branch and the
// caller has no cross-branch access, so the two cases are indistinguishable
// to the caller.
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
	Context string // Additional context like "in branch"
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

// ValidationError represents a validation error
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConflictError is returned when an update carries a version token that no
// longer matches the stored entity. It carries the server's current version
// and payload so the caller can merge, retry, or surface the conflict to a
// human without a second round trip. Never persisted.
type ConflictError struct {
	Entity           string
	SubmittedVersion int64
	CurrentVersion   int64
	CurrentPayload   interface{}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified by another request: submitted version %d, current version %d",
		e.Entity, e.SubmittedVersion, e.CurrentVersion)
}

// RateLimitError is returned when a caller identity exceeds its request
// ceiling for the current window.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string {
	return "too many requests"
}

// Entity Not Found Errors
var (
	ErrBranchNotFound            = &NotFoundError{Entity: "branch"}
	ErrTeamMemberNotFound        = &NotFoundError{Entity: "team member"}
	ErrContractorNotFound        = &NotFoundError{Entity: "contractor"}
	ErrVehicleNotFound           = &NotFoundError{Entity: "vehicle"}
	ErrVehicleInspectionNotFound = &NotFoundError{Entity: "vehicle inspection"}
	ErrEquipmentNotFound         = &NotFoundError{Entity: "equipment"}
	ErrPermitNotFound            = &NotFoundError{Entity: "permit"}
	ErrTrainingRecordNotFound    = &NotFoundError{Entity: "training record"}
)

// Already Exists Errors
var (
	ErrBranchExists     = &AlreadyExistsError{Entity: "branch", Context: "with this name"}
	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member", Context: "with this email in the branch"}
	ErrContractorExists = &AlreadyExistsError{Entity: "contractor", Context: "with this company name in the branch"}
	ErrVehicleExists    = &AlreadyExistsError{Entity: "vehicle", Context: "with this registration in the branch"}
	ErrEquipmentExists  = &AlreadyExistsError{Entity: "equipment", Context: "with this asset tag in the branch"}
)

// Business Logic Errors
var (
	ErrInvalidVersion          = &ValidationError{Field: "version", Message: "must be a positive integer"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrPermitWindowInvalid     = errors.New("permit validity window is invalid")
	ErrInspectionInFuture      = errors.New("inspection date cannot be in the future")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
	ErrNoTenantContext   = &AuthenticationError{Message: "no tenant context resolved for caller"}
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

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// AsConflict returns the ConflictError wrapped in err, if any.
func AsConflict(err error) (*ConflictError, bool) {
	var conflictErr *ConflictError
	ok := errors.As(err, &conflictErr)
	return conflictErr, ok
}

// IsRateLimit checks if an error is a RateLimitError
func IsRateLimit(err error) bool {
	var rateErr *RateLimitError
	return errors.As(err, &rateErr)
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

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConflictError creates a ConflictError for an entity, capturing the
// server's state at detection time.
func NewConflictError(entity string, submitted, current int64, payload interface{}) error {
	return &ConflictError{
		Entity:           entity,
		SubmittedVersion: submitted,
		CurrentVersion:   current,
		CurrentPayload:   payload,
	}
}

// NewRateLimitError creates a RateLimitError with a retry hint in seconds.
func NewRateLimitError(retryAfterSeconds int) error {
	return &RateLimitError{RetryAfterSeconds: retryAfterSeconds}
}
