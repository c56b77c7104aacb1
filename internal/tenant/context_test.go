package tenant

import (
	"net/http/httptest"
	"testing"

	apperrors "fieldsafe-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testGinContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestResolve(t *testing.T) {
	branchID := uuid.New()

	t.Run("resolves subject and branch", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeySubject, "ops@north-metro")
		c.Set(ContextKeyBranchID, branchID)

		tctx, err := Resolve(c)
		assert.NoError(t, err)
		assert.Equal(t, "ops@north-metro", tctx.Subject)
		assert.Equal(t, branchID, tctx.BranchID)
		assert.False(t, tctx.CrossTenant)
	})

	t.Run("resolves cross-tenant flag", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeySubject, "admin@hq")
		c.Set(ContextKeyBranchID, branchID)
		c.Set(ContextKeyCrossTenant, true)

		tctx, err := Resolve(c)
		assert.NoError(t, err)
		assert.True(t, tctx.CrossTenant)
	})

	t.Run("fails without subject", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeyBranchID, branchID)

		_, err := Resolve(c)
		assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
	})

	t.Run("fails with empty subject", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeySubject, "")
		c.Set(ContextKeyBranchID, branchID)

		_, err := Resolve(c)
		assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
	})

	t.Run("fails without branch", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeySubject, "ops@north-metro")

		_, err := Resolve(c)
		assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
	})

	t.Run("fails with nil branch id", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeySubject, "ops@north-metro")
		c.Set(ContextKeyBranchID, uuid.Nil)

		_, err := Resolve(c)
		assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
	})

	t.Run("fails with wrongly typed branch id", func(t *testing.T) {
		c := testGinContext()
		c.Set(ContextKeySubject, "ops@north-metro")
		c.Set(ContextKeyBranchID, branchID.String())

		_, err := Resolve(c)
		assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
	})
}

func TestOwns(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()

	t.Run("own branch", func(t *testing.T) {
		tctx := Context{BranchID: mine}
		assert.True(t, tctx.Owns(mine))
	})

	t.Run("foreign branch", func(t *testing.T) {
		tctx := Context{BranchID: mine}
		assert.False(t, tctx.Owns(other))
	})

	t.Run("cross-tenant sees every branch", func(t *testing.T) {
		tctx := Context{BranchID: mine, CrossTenant: true}
		assert.True(t, tctx.Owns(other))
	})
}
