package tenant

import (
	apperrors "fieldsafe-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gin context keys populated by the auth middleware.
const (
	ContextKeySubject     = "subject"
	ContextKeyBranchID    = "branch_id"
	ContextKeyCrossTenant = "cross_tenant"
)

// Context is the resolved tenant identity for a single request. It is derived
// per request and never persisted. Subject identifies the caller for rate
// limiting; BranchID is the owning branch every query is confined to unless
// CrossTenant is set.
type Context struct {
	Subject     string
	BranchID    uuid.UUID
	CrossTenant bool
}

// Resolve builds a Context from the authenticated request. Fails with an
// authentication error when the auth middleware has not installed a caller
// identity, so unauthenticated requests can never reach a query path.
func Resolve(c *gin.Context) (Context, error) {
	subject, ok := c.Get(ContextKeySubject)
	if !ok {
		return Context{}, apperrors.ErrNoTenantContext
	}
	subjectStr, ok := subject.(string)
	if !ok || subjectStr == "" {
		return Context{}, apperrors.ErrNoTenantContext
	}

	branchRaw, ok := c.Get(ContextKeyBranchID)
	if !ok {
		return Context{}, apperrors.ErrNoTenantContext
	}
	branchID, ok := branchRaw.(uuid.UUID)
	if !ok || branchID == uuid.Nil {
		return Context{}, apperrors.ErrNoTenantContext
	}

	crossTenant := false
	if v, ok := c.Get(ContextKeyCrossTenant); ok {
		if b, ok := v.(bool); ok {
			crossTenant = b
		}
	}

	return Context{
		Subject:     subjectStr,
		BranchID:    branchID,
		CrossTenant: crossTenant,
	}, nil
}

// Scope returns a GORM scope enforcing the tenant predicate. The predicate is
// AND-combined with whatever conditions the query already carries, so no
// caller-supplied filter can override or remove it. Cross-tenant contexts
// pass the query through unchanged.
func (t Context) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if t.CrossTenant {
			return db
		}
		return db.Where("branch_id = ?", t.BranchID)
	}
}

// Owns reports whether the context may see an entity owned by branchID.
func (t Context) Owns(branchID uuid.UUID) bool {
	return t.CrossTenant || t.BranchID == branchID
}
