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

// ContractorService handles business logic for contractors
type ContractorService struct {
	repo      repository.ContractorRepositoryInterface
	limiter   *ratelimit.Limiter
	validator *validator.Validate
}

// NewContractorService creates a new contractor service
func NewContractorService(repo repository.ContractorRepositoryInterface, limiter *ratelimit.Limiter, validator *validator.Validate) *ContractorService {
	return &ContractorService{repo: repo, limiter: limiter, validator: validator}
}

// CreateContractorRequest represents the request to create a contractor
type CreateContractorRequest struct {
	CompanyName     string                 `json:"company_name" validate:"required,max=200"`
	Trade           string                 `json:"trade" validate:"max=100"`
	ContactName     string                 `json:"contact_name" validate:"max=200"`
	ContactEmail    string                 `json:"contact_email" validate:"omitempty,email"`
	InductionStatus models.InductionStatus `json:"induction_status" validate:"omitempty,oneof=not_started in_progress completed expired"`
	InsuranceExpiry *time.Time             `json:"insurance_expiry,omitempty"`
}

// UpdateContractorRequest represents the request to update a contractor
type UpdateContractorRequest struct {
	Version         *int64                  `json:"version,omitempty"`
	CompanyName     *string                 `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Trade           *string                 `json:"trade,omitempty" validate:"omitempty,max=100"`
	ContactName     *string                 `json:"contact_name,omitempty" validate:"omitempty,max=200"`
	ContactEmail    *string                 `json:"contact_email,omitempty" validate:"omitempty,email"`
	InductionStatus *models.InductionStatus `json:"induction_status,omitempty" validate:"omitempty,oneof=not_started in_progress completed expired"`
	InsuranceExpiry *time.Time              `json:"insurance_expiry,omitempty"`
}

// ContractorResponse represents the response for contractor operations
type ContractorResponse struct {
	ID              uuid.UUID              `json:"id"`
	BranchID        uuid.UUID              `json:"branch_id"`
	CompanyName     string                 `json:"company_name"`
	Trade           string                 `json:"trade"`
	ContactName     string                 `json:"contact_name"`
	ContactEmail    string                 `json:"contact_email"`
	InductionStatus models.InductionStatus `json:"induction_status"`
	InsuranceExpiry *time.Time             `json:"insurance_expiry,omitempty"`
	Version         int64                  `json:"version"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// ContractorListResponse represents a paginated list of contractors
type ContractorListResponse struct {
	Contractors []ContractorResponse `json:"contractors"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// List returns one page of the caller's contractors, optionally filtered by
// induction status (an invalid status filter is ignored rather than erroring)
func (s *ContractorService) List(tctx tenant.Context, raw query.Params, inductionStatus string) (*ContractorListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	spec := query.Build(s.repo.Whitelist(), raw)

	var contractors []models.Contractor
	var total int64
	var err error
	if status := models.InductionStatus(inductionStatus); status.IsValid() {
		contractors, total, err = s.repo.ListByInductionStatus(tctx, spec, status)
	} else {
		contractors, total, err = s.repo.List(tctx, spec)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}

	responses := make([]ContractorResponse, len(contractors))
	for i := range contractors {
		responses[i] = *contractorToResponse(&contractors[i])
	}

	return &ContractorListResponse{
		Contractors: responses,
		Total:       total,
		Page:        spec.Page,
		PageSize:    spec.PageSize,
	}, nil
}

// GetByID returns a single contractor visible to the caller
func (s *ContractorService) GetByID(tctx tenant.Context, id uuid.UUID) (*ContractorResponse, error) {
	contractor, err := s.repo.GetByID(tctx, id)
	if err != nil {
		return nil, err
	}
	return contractorToResponse(contractor), nil
}

// Create registers a new contractor in the caller's branch at version 1
func (s *ContractorService) Create(tctx tenant.Context, req *CreateContractorRequest) (*ContractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Company name must be unique within the branch
	existing, err := s.repo.GetByCompanyName(tctx, req.CompanyName)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing contractor: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrContractorExists
	}

	status := req.InductionStatus
	if status == "" {
		status = models.InductionStatusNotStarted
	}

	contractor := &models.Contractor{
		CompanyName:     req.CompanyName,
		Trade:           req.Trade,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		InductionStatus: status,
		InsuranceExpiry: req.InsuranceExpiry,
	}
	if err := s.repo.Create(tctx, contractor); err != nil {
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}

	return contractorToResponse(contractor), nil
}

// Update applies a version-guarded update to a contractor
func (s *ContractorService) Update(tctx tenant.Context, id uuid.UUID, req *UpdateContractorRequest) (*ContractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	contractor, err := s.repo.UpdateGuarded(tctx, id, req.Version, func(c *models.Contractor) error {
		if req.CompanyName != nil {
			c.CompanyName = *req.CompanyName
		}
		if req.Trade != nil {
			c.Trade = *req.Trade
		}
		if req.ContactName != nil {
			c.ContactName = *req.ContactName
		}
		if req.ContactEmail != nil {
			c.ContactEmail = *req.ContactEmail
		}
		if req.InductionStatus != nil {
			c.InductionStatus = *req.InductionStatus
		}
		if req.InsuranceExpiry != nil {
			c.InsuranceExpiry = req.InsuranceExpiry
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return contractorToResponse(contractor), nil
}

// Delete removes a contractor from the caller's branch
func (s *ContractorService) Delete(tctx tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(tctx, id)
}

func contractorToResponse(c *models.Contractor) *ContractorResponse {
	return &ContractorResponse{
		ID:              c.ID,
		BranchID:        c.BranchID,
		CompanyName:     c.CompanyName,
		Trade:           c.Trade,
		ContactName:     c.ContactName,
		ContactEmail:    c.ContactEmail,
		InductionStatus: c.InductionStatus,
		InsuranceExpiry: c.InsuranceExpiry,
		Version:         c.Version,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}
