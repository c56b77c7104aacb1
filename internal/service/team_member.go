package service

import (
	"fmt"
	"time"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/ratelimit"
	"fieldsafe-backend/internal/repository"
	"fieldsafe-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamMemberService handles business logic for team members and their
// training records
type TeamMemberService struct {
	repo         repository.TeamMemberRepositoryInterface
	trainingRepo repository.TrainingRecordRepositoryInterface
	limiter      *ratelimit.Limiter
	validator    *validator.Validate
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(repo repository.TeamMemberRepositoryInterface, trainingRepo repository.TrainingRecordRepositoryInterface, limiter *ratelimit.Limiter, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		repo:         repo,
		trainingRepo: trainingRepo,
		limiter:      limiter,
		validator:    validator,
	}
}

// CreateTeamMemberRequest represents the request to create a team member
type CreateTeamMemberRequest struct {
	FullName    string                  `json:"full_name" validate:"required,max=200"`
	Email       string                  `json:"email" validate:"required,email"`
	PhoneNumber string                  `json:"phone_number" validate:"max=40"`
	JobTitle    string                  `json:"job_title" validate:"max=100"`
	Status      models.EmploymentStatus `json:"status" validate:"omitempty,oneof=active on_leave inactive"`
}

// UpdateTeamMemberRequest represents the request to update a team member
type UpdateTeamMemberRequest struct {
	Version     *int64                   `json:"version,omitempty"`
	FullName    *string                  `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Email       *string                  `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string                  `json:"phone_number,omitempty" validate:"omitempty,max=40"`
	JobTitle    *string                  `json:"job_title,omitempty" validate:"omitempty,max=100"`
	Status      *models.EmploymentStatus `json:"status,omitempty" validate:"omitempty,oneof=active on_leave inactive"`
}

// TeamMemberResponse represents the response for team member operations
type TeamMemberResponse struct {
	ID          uuid.UUID               `json:"id"`
	BranchID    uuid.UUID               `json:"branch_id"`
	FullName    string                  `json:"full_name"`
	Email       string                  `json:"email"`
	PhoneNumber string                  `json:"phone_number"`
	JobTitle    string                  `json:"job_title"`
	Status      models.EmploymentStatus `json:"status"`
	Version     int64                   `json:"version"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// TeamMemberListResponse represents a paginated list of team members
type TeamMemberListResponse struct {
	TeamMembers []TeamMemberResponse `json:"team_members"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CreateTrainingRecordRequest represents the request to record a course completion
type CreateTrainingRecordRequest struct {
	Course      string     `json:"course" validate:"required,max=200"`
	CompletedAt time.Time  `json:"completed_at" validate:"required"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Provider    string     `json:"provider" validate:"max=200"`
}

// TrainingRecordResponse represents the response for training record operations
type TrainingRecordResponse struct {
	ID           uuid.UUID  `json:"id"`
	TeamMemberID uuid.UUID  `json:"team_member_id"`
	BranchID     uuid.UUID  `json:"branch_id"`
	Course       string     `json:"course"`
	CompletedAt  time.Time  `json:"completed_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Provider     string     `json:"provider"`
	Version      int64      `json:"version"`
}

// TrainingRecordListResponse represents a paginated list of training records
type TrainingRecordListResponse struct {
	TrainingRecords []TrainingRecordResponse `json:"training_records"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
}

// List returns one page of the caller's team members
func (s *TeamMemberService) List(tctx tenant.Context, raw query.Params) (*TeamMemberListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	spec := query.Build(s.repo.Whitelist(), raw)
	members, total, err := s.repo.List(tctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *teamMemberToResponse(&members[i])
	}

	return &TeamMemberListResponse{
		TeamMembers: responses,
		Total:       total,
		Page:        spec.Page,
		PageSize:    spec.PageSize,
	}, nil
}

// GetByID returns a single team member visible to the caller
func (s *TeamMemberService) GetByID(tctx tenant.Context, id uuid.UUID) (*TeamMemberResponse, error) {
	member, err := s.repo.GetByID(tctx, id)
	if err != nil {
		return nil, err
	}
	return teamMemberToResponse(member), nil
}

// Create registers a new team member in the caller's branch at version 1
func (s *TeamMemberService) Create(tctx tenant.Context, req *CreateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByEmail(tctx, req.Email)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing team member: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamMemberExists
	}

	status := req.Status
	if status == "" {
		status = models.EmploymentStatusActive
	}

	member := &models.TeamMember{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		JobTitle:    req.JobTitle,
		Status:      status,
	}
	if err := s.repo.Create(tctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return teamMemberToResponse(member), nil
}

// Update applies a version-guarded update to a team member
func (s *TeamMemberService) Update(tctx tenant.Context, id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	member, err := s.repo.UpdateGuarded(tctx, id, req.Version, func(m *models.TeamMember) error {
		if req.FullName != nil {
			m.FullName = *req.FullName
		}
		if req.Email != nil {
			m.Email = *req.Email
		}
		if req.PhoneNumber != nil {
			m.PhoneNumber = *req.PhoneNumber
		}
		if req.JobTitle != nil {
			m.JobTitle = *req.JobTitle
		}
		if req.Status != nil {
			m.Status = *req.Status
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return teamMemberToResponse(member), nil
}

// Delete removes a team member from the caller's branch
func (s *TeamMemberService) Delete(tctx tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(tctx, id)
}

// ListTrainingRecords returns one page of a member's training records
func (s *TeamMemberService) ListTrainingRecords(tctx tenant.Context, memberID uuid.UUID, raw query.Params) (*TrainingRecordListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	if _, err := s.repo.GetByID(tctx, memberID); err != nil {
		return nil, err
	}

	spec := query.Build(s.trainingRepo.Whitelist(), raw)
	records, total, err := s.trainingRepo.ListByTeamMember(tctx, spec, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training records: %w", err)
	}

	responses := make([]TrainingRecordResponse, len(records))
	for i := range records {
		responses[i] = *trainingRecordToResponse(&records[i])
	}

	return &TrainingRecordListResponse{
		TrainingRecords: responses,
		Total:           total,
		Page:            spec.Page,
		PageSize:        spec.PageSize,
	}, nil
}

// CreateTrainingRecord records a course completion for a member in the caller's branch
func (s *TeamMemberService) CreateTrainingRecord(tctx tenant.Context, memberID uuid.UUID, req *CreateTrainingRecordRequest) (*TrainingRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetByID(tctx, memberID); err != nil {
		return nil, err
	}

	record := &models.TrainingRecord{
		TeamMemberID: memberID,
		Course:       req.Course,
		CompletedAt:  req.CompletedAt,
		ExpiresAt:    req.ExpiresAt,
		Provider:     req.Provider,
	}
	if err := s.trainingRepo.Create(tctx, record); err != nil {
		return nil, fmt.Errorf("failed to create training record: %w", err)
	}

	return trainingRecordToResponse(record), nil
}

func teamMemberToResponse(m *models.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:          m.ID,
		BranchID:    m.BranchID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		JobTitle:    m.JobTitle,
		Status:      m.Status,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

func trainingRecordToResponse(r *models.TrainingRecord) *TrainingRecordResponse {
	return &TrainingRecordResponse{
		ID:           r.ID,
		TeamMemberID: r.TeamMemberID,
		BranchID:     r.BranchID,
		Course:       r.Course,
		CompletedAt:  r.CompletedAt,
		ExpiresAt:    r.ExpiresAt,
		Provider:     r.Provider,
		Version:      r.Version,
	}
}
