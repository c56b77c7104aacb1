package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewService("test-signing-key", time.Hour)
	branchID := uuid.New()

	t.Run("issued token validates", func(t *testing.T) {
		token, err := service.GenerateToken("ops@north-metro", "ops@fieldsafe.test", branchID, false)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "ops@north-metro", claims.Subject)
		assert.Equal(t, "ops@fieldsafe.test", claims.Email)
		assert.Equal(t, branchID.String(), claims.BranchID)
		assert.False(t, claims.Admin)
	})

	t.Run("admin flag survives the round trip", func(t *testing.T) {
		token, err := service.GenerateToken("hq-admin", "admin@fieldsafe.test", branchID, true)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.Admin)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := service.GenerateToken("ops@north-metro", "ops@fieldsafe.test", branchID, false)
		require.NoError(t, err)

		other := NewService("different-key", time.Hour)
		claims, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		shortLived := NewService("test-signing-key", -time.Minute)
		token, err := shortLived.GenerateToken("ops@north-metro", "ops@fieldsafe.test", branchID, false)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		claims, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService("test-signing-key", time.Hour)
	middleware := NewMiddleware(service)
	branchID := uuid.New()

	newRouter := func() (*gin.Engine, *tenant.Context) {
		captured := &tenant.Context{}
		router := gin.New()
		router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
			tctx, err := tenant.Resolve(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			*captured = tctx
			c.Status(http.StatusOK)
		})
		return router, captured
	}

	t.Run("valid token installs tenant identity", func(t *testing.T) {
		router, captured := newRouter()
		token, err := service.GenerateToken("ops@north-metro", "ops@fieldsafe.test", branchID, false)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops@north-metro", captured.Subject)
		assert.Equal(t, branchID, captured.BranchID)
		assert.False(t, captured.CrossTenant)
	})

	t.Run("admin token grants cross-branch context", func(t *testing.T) {
		router, captured := newRouter()
		token, err := service.GenerateToken("hq-admin", "admin@fieldsafe.test", branchID, true)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, captured.CrossTenant)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		router, _ := newRouter()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		router, _ := newRouter()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		router, _ := newRouter()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}

func TestRequireCrossTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService("test-signing-key", time.Hour)
	middleware := NewMiddleware(service)
	branchID := uuid.New()

	router := gin.New()
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireCrossTenant(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := service.GenerateToken("hq-admin", "admin@fieldsafe.test", branchID, true)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("branch-scoped caller forbidden", func(t *testing.T) {
		token, err := service.GenerateToken("ops@north-metro", "ops@fieldsafe.test", branchID, false)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "cross-branch access required")
	})
}
