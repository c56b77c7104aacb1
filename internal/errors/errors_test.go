package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "vehicle"}
		assert.Equal(t, "vehicle not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "vehicle"}
		err2 := &NotFoundError{Entity: "vehicle"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "vehicle"}
		err2 := &NotFoundError{Entity: "permit"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrVehicleNotFound, ErrVehicleNotFound))
		assert.False(t, errors.Is(ErrVehicleNotFound, ErrPermitNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrVehicleNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup failed: %w", ErrBranchNotFound)))
		assert.False(t, IsNotFound(ErrVehicleExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "vehicle", Context: "with this registration in the branch"}
		assert.Equal(t, "vehicle already exists with this registration in the branch", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "vehicle"}
		assert.Equal(t, "vehicle already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "equipment", Context: "in branch"}
		err2 := &AlreadyExistsError{Entity: "equipment", Context: "in branch"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamMemberExists))
		assert.False(t, IsAlreadyExists(ErrTeamMemberNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "version", Message: "must be a positive integer"}
		assert.Equal(t, "validation error: version - must be a positive integer", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("valid_to", "must be after valid_from")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrInvalidVersion))
		assert.False(t, IsValidation(ErrVehicleNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message carries both versions", func(t *testing.T) {
		err := NewConflictError("permit", 3, 5, nil)
		assert.Equal(t, "permit was modified by another request: submitted version 3, current version 5", err.Error())
	})

	t.Run("AsConflict exposes server state", func(t *testing.T) {
		payload := map[string]any{"status": "approved", "version": int64(5)}
		err := NewConflictError("permit", 3, 5, payload)

		conflict, ok := AsConflict(err)
		assert.True(t, ok)
		assert.Equal(t, int64(3), conflict.SubmittedVersion)
		assert.Equal(t, int64(5), conflict.CurrentVersion)
		assert.Equal(t, payload, conflict.CurrentPayload)
	})

	t.Run("AsConflict unwraps", func(t *testing.T) {
		err := fmt.Errorf("update failed: %w", NewConflictError("vehicle", 1, 2, nil))
		conflict, ok := AsConflict(err)
		assert.True(t, ok)
		assert.Equal(t, int64(2), conflict.CurrentVersion)
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(NewConflictError("vehicle", 1, 2, nil)))
		assert.False(t, IsConflict(ErrVehicleNotFound))
	})

	t.Run("AsConflict on unrelated error", func(t *testing.T) {
		conflict, ok := AsConflict(errors.New("boom"))
		assert.False(t, ok)
		assert.Nil(t, conflict)
	})
}

func TestRateLimitError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewRateLimitError(17)
		assert.Equal(t, "too many requests", err.Error())
	})

	t.Run("Retry hint survives As", func(t *testing.T) {
		err := NewRateLimitError(42)
		var rateErr *RateLimitError
		assert.True(t, errors.As(err, &rateErr))
		assert.Equal(t, 42, rateErr.RetryAfterSeconds)
	})

	t.Run("IsRateLimit helper", func(t *testing.T) {
		assert.True(t, IsRateLimit(NewRateLimitError(1)))
		assert.False(t, IsRateLimit(ErrInvalidVersion))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "authorization header is required", ErrMissingAuthHeader.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrNoTenantContext))
		assert.True(t, IsAuthentication(NewAuthenticationError("nope")))
		assert.False(t, IsAuthentication(ErrVehicleNotFound))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("widget")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "widget not found", err.Error())
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("widget", "in the branch")
		assert.True(t, IsAlreadyExists(err))
		assert.Equal(t, "widget already exists in the branch", err.Error())
	})
}
