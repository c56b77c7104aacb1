package handlers

import (
	"net/http"

	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for team members and their
// training records
type TeamMemberHandler struct {
	teamMemberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(teamMemberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		teamMemberService: teamMemberService,
	}
}

// ListTeamMembers lists team members in the caller's branch
// @Summary List team members
// @Description List team members in the caller's branch with sorting and pagination
// @Tags team-members
// @Accept json
// @Produce json
// @Param sort query string false "Sort field (full_name, email, role, status, created_at)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Success 200 {object} service.TeamMemberListResponse "Successfully retrieved team members"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	members, err := h.teamMemberService.List(tctx, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetTeamMember retrieves a team member by ID
// @Summary Get team member by ID
// @Description Get a specific team member by their UUID. Team members belonging to other branches are reported as not found.
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {object} service.TeamMemberResponse "Successfully retrieved team member"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "team member")
	if !ok {
		return
	}

	member, err := h.teamMemberService.GetByID(tctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// CreateTeamMember creates a new team member
// @Summary Create a new team member
// @Description Create a new team member in the caller's branch at version 1
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully created team member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already exists in the branch"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamMemberService.Create(tctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember updates an existing team member
// @Summary Update team member
// @Description Update an existing team member. When the request carries a version token and it no longer matches the stored record, the response is a 409 carrying the server's current version and data.
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "Updated team member data"
// @Success 200 {object} service.TeamMemberResponse "Successfully updated team member"
// @Failure 400 {object} ErrorResponse "Invalid request body or team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 409 {object} map[string]interface{} "Version conflict"
// @Security BearerAuth
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "team member")
	if !ok {
		return
	}

	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamMemberService.Update(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember deletes a team member
// @Summary Delete team member
// @Description Delete a team member by ID
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 204 "Successfully deleted team member"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "team member")
	if !ok {
		return
	}

	if err := h.teamMemberService.Delete(tctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ListTrainingRecords lists training records for a team member
// @Summary List training records
// @Description List training records for a team member in the caller's branch
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param sort query string false "Sort field (course_name, completed_at, expires_at)"
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (1-100)" default(20)
// @Success 200 {object} service.TrainingRecordListResponse "Successfully retrieved training records"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id}/training-records [get]
func (h *TeamMemberHandler) ListTrainingRecords(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "team member")
	if !ok {
		return
	}

	records, err := h.teamMemberService.ListTrainingRecords(tctx, id, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateTrainingRecord records a completed training for a team member
// @Summary Record a completed training
// @Description Record a completed training course against a team member in the caller's branch
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param record body service.CreateTrainingRecordRequest true "Training record data"
// @Success 201 {object} service.TrainingRecordResponse "Successfully recorded training"
// @Failure 400 {object} ErrorResponse "Invalid request body or team member ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id}/training-records [post]
func (h *TeamMemberHandler) CreateTrainingRecord(c *gin.Context) {
	tctx, ok := resolveTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "team member")
	if !ok {
		return
	}

	var req service.CreateTrainingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.teamMemberService.CreateTrainingRecord(tctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
