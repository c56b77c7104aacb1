package handlers

import (
	"net/http"

	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VehicleHandler handles HTTP requests for vehicles and their inspections
type VehicleHandler struct {
	vehicleService service.VehicleServiceInterface
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService service.VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// ListVehicles lists vehicles in the caller's branch
// @Summary List vehicles
// @Description List vehicles in the caller's branch with sorting and pagination. Unknown sort fields and directions fall back to defaults.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param sort query string false "Sort field (registration, make, model, status, created_at)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Success 200 {object} service.VehicleListResponse "Successfully retrieved vehicles"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Security BearerAuth
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.List(tctx, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle retrieves a vehicle by ID
// @Summary Get vehicle by ID
// @Description Get a specific vehicle by its UUID. Vehicles belonging to other branches are reported as not found.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 200 {object} service.VehicleResponse "Successfully retrieved vehicle"
// @Failure 400 {object} ErrorResponse "Invalid vehicle ID"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(tctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle creates a new vehicle
// @Summary Create a new vehicle
// @Description Create a new vehicle in the caller's branch at version 1
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body service.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} service.VehicleResponse "Successfully created vehicle"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Registration already exists in the branch"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Create(tctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle updates an existing vehicle
// @Summary Update vehicle
// @Description Update an existing vehicle. When the request carries a version token and it no longer matches the stored vehicle, the response is a 409 carrying the server's current version and data.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param vehicle body service.UpdateVehicleRequest true "Updated vehicle data"
// @Success 200 {object} service.VehicleResponse "Successfully updated vehicle"
// @Failure 400 {object} ErrorResponse "Invalid request body or vehicle ID"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 409 {object} map[string]interface{} "Version conflict"
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var req service.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Update(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle deletes a vehicle
// @Summary Delete vehicle
// @Description Delete a vehicle by ID
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Success 204 "Successfully deleted vehicle"
// @Failure 400 {object} ErrorResponse "Invalid vehicle ID"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(tctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ListInspections lists inspections for a vehicle
// @Summary List vehicle inspections
// @Description List inspections recorded against a vehicle in the caller's branch
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param sort query string false "Sort field (inspected_at, result, inspector)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Success 200 {object} service.InspectionListResponse "Successfully retrieved inspections"
// @Failure 400 {object} ErrorResponse "Invalid vehicle ID"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id}/inspections [get]
func (h *VehicleHandler) ListInspections(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	inspections, err := h.vehicleService.ListInspections(tctx, id, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, inspections)
}

// CreateInspection records an inspection against a vehicle
// @Summary Record a vehicle inspection
// @Description Record a new inspection against a vehicle in the caller's branch
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID (UUID)"
// @Param inspection body service.CreateInspectionRequest true "Inspection data"
// @Success 201 {object} service.InspectionResponse "Successfully recorded inspection"
// @Failure 400 {object} ErrorResponse "Invalid request body or vehicle ID"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id}/inspections [post]
func (h *VehicleHandler) CreateInspection(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var req service.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inspection, err := h.vehicleService.CreateInspection(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inspection)
}
