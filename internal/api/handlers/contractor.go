package handlers

import (
	"net/http"

	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContractorHandler handles HTTP requests for contractors
type ContractorHandler struct {
	contractorService service.ContractorServiceInterface
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractorService service.ContractorServiceInterface) *ContractorHandler {
	return &ContractorHandler{
		contractorService: contractorService,
	}
}

// ListContractors lists contractors in the caller's branch
// @Summary List contractors
// @Description List contractors in the caller's branch with sorting, pagination, and an optional induction status filter
// @Tags contractors
// @Accept json
// @Produce json
// @Param sort query string false "Sort field (company_name, contact_name, induction_status, created_at)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Param induction_status query string false "Filter by induction status (not_started, in_progress, completed, expired)"
// @Success 200 {object} service.ContractorListResponse "Successfully retrieved contractors"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Security BearerAuth
// @Router /contractors [get]
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	contractors, err := h.contractorService.List(tctx, listParams(c), c.Query("induction_status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contractors)
}

// GetContractor retrieves a contractor by ID
// @Summary Get contractor by ID
// @Description Get a specific contractor by its UUID. Contractors belonging to other branches are reported as not found.
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Success 200 {object} service.ContractorResponse "Successfully retrieved contractor"
// @Failure 400 {object} ErrorResponse "Invalid contractor ID"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [get]
func (h *ContractorHandler) GetContractor(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "contractor")
	if !ok {
		return
	}

	contractor, err := h.contractorService.GetByID(tctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contractor)
}

// CreateContractor creates a new contractor
// @Summary Create a new contractor
// @Description Create a new contractor in the caller's branch at version 1. Induction status defaults to not_started.
// @Tags contractors
// @Accept json
// @Produce json
// @Param contractor body service.CreateContractorRequest true "Contractor data"
// @Success 201 {object} service.ContractorResponse "Successfully created contractor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req service.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorService.Create(tctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contractor)
}

// UpdateContractor updates an existing contractor
// @Summary Update contractor
// @Description Update an existing contractor. When the request carries a version token and it no longer matches the stored record, the response is a 409 carrying the server's current version and data.
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Param contractor body service.UpdateContractorRequest true "Updated contractor data"
// @Success 200 {object} service.ContractorResponse "Successfully updated contractor"
// @Failure 400 {object} ErrorResponse "Invalid request body or contractor ID"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Failure 409 {object} map[string]interface{} "Version conflict"
// @Security BearerAuth
// @Router /contractors/{id} [put]
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "contractor")
	if !ok {
		return
	}

	var req service.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorService.Update(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor deletes a contractor
// @Summary Delete contractor
// @Description Delete a contractor by ID
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Success 204 "Successfully deleted contractor"
// @Failure 400 {object} ErrorResponse "Invalid contractor ID"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "contractor")
	if !ok {
		return
	}

	if err := h.contractorService.Delete(tctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
