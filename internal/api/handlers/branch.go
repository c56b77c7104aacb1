package handlers

import (
	"net/http"
	"strconv"

	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BranchHandler handles HTTP requests for branch management. All of its
// routes are restricted to cross-branch administrators.
type BranchHandler struct {
	branchService service.BranchServiceInterface
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService service.BranchServiceInterface) *BranchHandler {
	return &BranchHandler{
		branchService: branchService,
	}
}

// ListBranches lists all branches
// @Summary List branches
// @Description List all branches with pagination, ordered by name. Restricted to cross-branch administrators.
// @Tags branches
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Success 200 {object} service.BranchListResponse "Successfully retrieved branches"
// @Failure 403 {object} ErrorResponse "Cross-branch access required"
// @Security BearerAuth
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	branches, err := h.branchService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, branches)
}

// GetBranch retrieves a branch by ID
// @Summary Get branch by ID
// @Description Get a specific branch by its UUID
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} service.BranchResponse "Successfully retrieved branch"
// @Failure 400 {object} ErrorResponse "Invalid branch ID"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, ok := parseID(c, "branch")
	if !ok {
		return
	}

	branch, err := h.branchService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, branch)
}

// CreateBranch creates a new branch
// @Summary Create a new branch
// @Description Create a new branch with a unique name
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body service.CreateBranchRequest true "Branch data"
// @Success 201 {object} service.BranchResponse "Successfully created branch"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Branch name already exists"
// @Security BearerAuth
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req service.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch, err := h.branchService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// UpdateBranch updates an existing branch
// @Summary Update branch
// @Description Update branch details. The branch name is immutable.
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Param branch body service.UpdateBranchRequest true "Updated branch data"
// @Success 200 {object} service.BranchResponse "Successfully updated branch"
// @Failure 400 {object} ErrorResponse "Invalid request body or branch ID"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	id, ok := parseID(c, "branch")
	if !ok {
		return
	}

	var req service.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch, err := h.branchService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, branch)
}

// DeleteBranch deletes a branch
// @Summary Delete branch
// @Description Delete a branch and, through cascades, everything it owns
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 204 "Successfully deleted branch"
// @Failure 400 {object} ErrorResponse "Invalid branch ID"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, ok := parseID(c, "branch")
	if !ok {
		return
	}

	if err := h.branchService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
