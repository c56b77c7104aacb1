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

// PermitService handles business logic for work permits
type PermitService struct {
	repo      repository.PermitRepositoryInterface
	limiter   *ratelimit.Limiter
	validator *validator.Validate
}

// NewPermitService creates a new permit service
func NewPermitService(repo repository.PermitRepositoryInterface, limiter *ratelimit.Limiter, validator *validator.Validate) *PermitService {
	return &PermitService{repo: repo, limiter: limiter, validator: validator}
}

// CreatePermitRequest represents the request to create a permit
type CreatePermitRequest struct {
	PermitType string              `json:"permit_type" validate:"required,max=100"`
	Status     models.PermitStatus `json:"status" validate:"omitempty,oneof=draft active expired revoked"`
	IssuedTo   string              `json:"issued_to" validate:"max=200"`
	ValidFrom  *time.Time          `json:"valid_from,omitempty"`
	ValidTo    *time.Time          `json:"valid_to,omitempty"`
	Notes      string              `json:"notes"`
}

// UpdatePermitRequest represents the request to update a permit
type UpdatePermitRequest struct {
	Version    *int64               `json:"version,omitempty"`
	PermitType *string              `json:"permit_type,omitempty" validate:"omitempty,max=100"`
	Status     *models.PermitStatus `json:"status,omitempty" validate:"omitempty,oneof=draft active expired revoked"`
	IssuedTo   *string              `json:"issued_to,omitempty" validate:"omitempty,max=200"`
	ValidFrom  *time.Time           `json:"valid_from,omitempty"`
	ValidTo    *time.Time           `json:"valid_to,omitempty"`
	Notes      *string              `json:"notes,omitempty"`
}

// PermitResponse represents the response for permit operations
type PermitResponse struct {
	ID         uuid.UUID           `json:"id"`
	BranchID   uuid.UUID           `json:"branch_id"`
	PermitType string              `json:"permit_type"`
	Status     models.PermitStatus `json:"status"`
	IssuedTo   string              `json:"issued_to"`
	ValidFrom  *time.Time          `json:"valid_from,omitempty"`
	ValidTo    *time.Time          `json:"valid_to,omitempty"`
	Notes      string              `json:"notes"`
	Version    int64               `json:"version"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// PermitListResponse represents a paginated list of permits
type PermitListResponse struct {
	Permits  []PermitResponse `json:"permits"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// List returns one page of the caller's permits, optionally filtered by
// status (an invalid status filter is ignored rather than erroring)
func (s *PermitService) List(tctx tenant.Context, raw query.Params, status string) (*PermitListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	spec := query.Build(s.repo.Whitelist(), raw)

	var permits []models.Permit
	var total int64
	var err error
	if st := models.PermitStatus(status); st.IsValid() {
		permits, total, err = s.repo.ListByStatus(tctx, spec, st)
	} else {
		permits, total, err = s.repo.List(tctx, spec)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list permits: %w", err)
	}

	responses := make([]PermitResponse, len(permits))
	for i := range permits {
		responses[i] = *permitToResponse(&permits[i])
	}

	return &PermitListResponse{
		Permits:  responses,
		Total:    total,
		Page:     spec.Page,
		PageSize: spec.PageSize,
	}, nil
}

// GetByID returns a single permit visible to the caller
func (s *PermitService) GetByID(tctx tenant.Context, id uuid.UUID) (*PermitResponse, error) {
	permit, err := s.repo.GetByID(tctx, id)
	if err != nil {
		return nil, err
	}
	return permitToResponse(permit), nil
}

// Create issues a new permit in the caller's branch at version 1
func (s *PermitService) Create(tctx tenant.Context, req *CreatePermitRequest) (*PermitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := validatePermitWindow(req.ValidFrom, req.ValidTo); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.PermitStatusDraft
	}

	permit := &models.Permit{
		PermitType: req.PermitType,
		Status:     status,
		IssuedTo:   req.IssuedTo,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(tctx, permit); err != nil {
		return nil, fmt.Errorf("failed to create permit: %w", err)
	}

	return permitToResponse(permit), nil
}

// Update applies a version-guarded update to a permit
func (s *PermitService) Update(tctx tenant.Context, id uuid.UUID, req *UpdatePermitRequest) (*PermitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	permit, err := s.repo.UpdateGuarded(tctx, id, req.Version, func(p *models.Permit) error {
		if req.PermitType != nil {
			p.PermitType = *req.PermitType
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.IssuedTo != nil {
			p.IssuedTo = *req.IssuedTo
		}
		if req.ValidFrom != nil {
			p.ValidFrom = req.ValidFrom
		}
		if req.ValidTo != nil {
			p.ValidTo = req.ValidTo
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
		}
		return validatePermitWindow(p.ValidFrom, p.ValidTo)
	})
	if err != nil {
		return nil, err
	}

	return permitToResponse(permit), nil
}

// Delete removes a permit from the caller's branch
func (s *PermitService) Delete(tctx tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(tctx, id)
}

func validatePermitWindow(from, to *time.Time) error {
	if from != nil && to != nil && !to.After(*from) {
		return apperrors.NewValidationError("valid_to", "must be after valid_from")
	}
	return nil
}

func permitToResponse(p *models.Permit) *PermitResponse {
	return &PermitResponse{
		ID:         p.ID,
		BranchID:   p.BranchID,
		PermitType: p.PermitType,
		Status:     p.Status,
		IssuedTo:   p.IssuedTo,
		ValidFrom:  p.ValidFrom,
		ValidTo:    p.ValidTo,
		Notes:      p.Notes,
		Version:    p.Version,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
