package auth

import (
	"net/http"
	"strings"

	"fieldsafe-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the bearer token and installs the caller's tenant
// identity into the request context. Every data route sits behind this;
// tenant.Resolve depends on the keys set here.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// BranchID was validated as a UUID with the token
		branchID, _ := uuid.Parse(claims.BranchID)

		c.Set(tenant.ContextKeySubject, claims.Subject)
		c.Set(tenant.ContextKeyBranchID, branchID)
		c.Set(tenant.ContextKeyCrossTenant, claims.Admin)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// RequireCrossTenant allows only callers holding the cross-branch capability.
// Used for branch administration routes.
func (m *Middleware) RequireCrossTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(tenant.ContextKeyCrossTenant)
		admin, ok := v.(bool)
		if !exists || !ok || !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "cross-branch access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
