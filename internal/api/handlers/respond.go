package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError translates service errors into HTTP responses. Conflict
// responses carry the server's current version and payload so the client can
// merge and retry without another round trip; rate limit responses carry a
// Retry-After header.
func respondError(c *gin.Context, err error) {
	if conflict, ok := apperrors.AsConflict(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error":          "conflict",
			"message":        conflict.Error(),
			"client_version": conflict.SubmittedVersion,
			"server_version": conflict.CurrentVersion,
			"server_data":    conflict.CurrentPayload,
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsRateLimit(err):
		var rl *apperrors.RateLimitError
		if errors.As(err, &rl) && rl.RetryAfterSeconds > 0 {
			c.Header("Retry-After", strconv.Itoa(rl.RetryAfterSeconds))
		}
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// resolveTenant resolves the caller's tenant context or writes a 401 and
// reports false.
func resolveTenant(c *gin.Context) (tenant.Context, bool) {
	tctx, err := tenant.Resolve(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return tenant.Context{}, false
	}
	return tctx, true
}

// parseID parses the :id path parameter or writes a 400 and reports false.
func parseID(c *gin.Context, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// listParams collects the raw list parameters from the query string. They are
// validated downstream against the resource's sort whitelist.
func listParams(c *gin.Context) query.Params {
	return query.Params{
		Sort:      c.Query("sort"),
		Direction: c.Query("direction"),
		Page:      c.Query("page"),
		PageSize:  c.Query("page_size"),
	}
}
