package handlers

import (
	"net/http"

	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler handles HTTP requests for equipment
type EquipmentHandler struct {
	equipmentService service.EquipmentServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(equipmentService service.EquipmentServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
	}
}

// ListEquipment lists equipment in the caller's branch
// @Summary List equipment
// @Description List equipment in the caller's branch with sorting and pagination
// @Tags equipment
// @Accept json
// @Produce json
// @Param sort query string false "Sort field (asset_tag, name, condition, created_at)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Success 200 {object} service.EquipmentListResponse "Successfully retrieved equipment"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Security BearerAuth
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	equipment, err := h.equipmentService.List(tctx, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment retrieves an equipment item by ID
// @Summary Get equipment by ID
// @Description Get a specific equipment item by its UUID. Equipment belonging to other branches is reported as not found.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}

	equipment, err := h.equipmentService.GetByID(tctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// CreateEquipment creates a new equipment item
// @Summary Create a new equipment item
// @Description Create a new equipment item in the caller's branch at version 1
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Successfully created equipment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Asset tag already exists in the branch"
// @Security BearerAuth
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.equipmentService.Create(tctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// UpdateEquipment updates an existing equipment item
// @Summary Update equipment
// @Description Update an existing equipment item. When the request carries a version token and it no longer matches the stored record, the response is a 409 carrying the server's current version and data.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param equipment body service.UpdateEquipmentRequest true "Updated equipment data"
// @Success 200 {object} service.EquipmentResponse "Successfully updated equipment"
// @Failure 400 {object} ErrorResponse "Invalid request body or equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Failure 409 {object} map[string]interface{} "Version conflict"
// @Security BearerAuth
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}

	var req service.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.equipmentService.Update(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment deletes an equipment item
// @Summary Delete equipment
// @Description Delete an equipment item by ID
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 204 "Successfully deleted equipment"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}

	if err := h.equipmentService.Delete(tctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
