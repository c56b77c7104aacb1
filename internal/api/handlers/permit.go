package handlers

import (
	"net/http"

	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PermitHandler handles HTTP requests for work permits
type PermitHandler struct {
	permitService service.PermitServiceInterface
}

// NewPermitHandler creates a new permit handler
func NewPermitHandler(permitService service.PermitServiceInterface) *PermitHandler {
	return &PermitHandler{
		permitService: permitService,
	}
}

// ListPermits lists permits in the caller's branch
// @Summary List permits
// @Description List permits in the caller's branch with sorting, pagination, and an optional status filter
// @Tags permits
// @Accept json
// @Produce json
// @Param sort query string false "Sort field (permit_type, status, issued_to, created_at)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Param status query string false "Filter by status (draft, active, expired, revoked)"
// @Success 200 {object} service.PermitListResponse "Successfully retrieved permits"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Security BearerAuth
// @Router /permits [get]
func (h *PermitHandler) ListPermits(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	permits, err := h.permitService.List(tctx, listParams(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permits)
}

// GetPermit retrieves a permit by ID
// @Summary Get permit by ID
// @Description Get a specific permit by its UUID. Permits belonging to other branches are reported as not found.
// @Tags permits
// @Accept json
// @Produce json
// @Param id path string true "Permit ID (UUID)"
// @Success 200 {object} service.PermitResponse "Successfully retrieved permit"
// @Failure 400 {object} ErrorResponse "Invalid permit ID"
// @Failure 404 {object} ErrorResponse "Permit not found"
// @Security BearerAuth
// @Router /permits/{id} [get]
func (h *PermitHandler) GetPermit(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "permit")
	if !ok {
		return
	}

	permit, err := h.permitService.GetByID(tctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permit)
}

// CreatePermit issues a new permit
// @Summary Issue a new permit
// @Description Issue a new permit in the caller's branch at version 1. Status defaults to draft.
// @Tags permits
// @Accept json
// @Produce json
// @Param permit body service.CreatePermitRequest true "Permit data"
// @Success 201 {object} service.PermitResponse "Successfully issued permit"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /permits [post]
func (h *PermitHandler) CreatePermit(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req service.CreatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permit, err := h.permitService.Create(tctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, permit)
}

// UpdatePermit updates an existing permit
// @Summary Update permit
// @Description Update an existing permit. When the request carries a version token and it no longer matches the stored record, the response is a 409 carrying the server's current version and data.
// @Tags permits
// @Accept json
// @Produce json
// @Param id path string true "Permit ID (UUID)"
// @Param permit body service.UpdatePermitRequest true "Updated permit data"
// @Success 200 {object} service.PermitResponse "Successfully updated permit"
// @Failure 400 {object} ErrorResponse "Invalid request body or permit ID"
// @Failure 404 {object} ErrorResponse "Permit not found"
// @Failure 409 {object} map[string]interface{} "Version conflict"
// @Security BearerAuth
// @Router /permits/{id} [put]
func (h *PermitHandler) UpdatePermit(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "permit")
	if !ok {
		return
	}

	var req service.UpdatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permit, err := h.permitService.Update(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permit)
}

// DeletePermit deletes a permit
// @Summary Delete permit
// @Description Delete a permit by ID
// @Tags permits
// @Accept json
// @Produce json
// @Param id path string true "Permit ID (UUID)"
// @Success 204 "Successfully deleted permit"
// @Failure 400 {object} ErrorResponse "Invalid permit ID"
// @Failure 404 {object} ErrorResponse "Permit not found"
// @Security BearerAuth
// @Router /permits/{id} [delete]
func (h *PermitHandler) DeletePermit(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "permit")
	if !ok {
		return
	}

	if err := h.permitService.Delete(tctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
