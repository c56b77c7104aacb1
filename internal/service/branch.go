package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchService handles business logic for branch management. All of its
// operations require a cross-branch administrator, enforced at the route
// level.
type BranchService struct {
	repo      repository.BranchRepositoryInterface
	validator *validator.Validate
}

// NewBranchService creates a new branch service
func NewBranchService(repo repository.BranchRepositoryInterface, validator *validator.Validate) *BranchService {
	return &BranchService{repo: repo, validator: validator}
}

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" validate:"required,max=200"`
	Region      string          `json:"region" validate:"max=100"`
	Address     string          `json:"address"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// UpdateBranchRequest represents the request to update a branch
type UpdateBranchRequest struct {
	DisplayName *string         `json:"display_name,omitempty" validate:"omitempty,max=200"`
	Region      *string         `json:"region,omitempty" validate:"omitempty,max=100"`
	Address     *string         `json:"address,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// BranchResponse represents the response for branch operations
type BranchResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Region      string          `json:"region"`
	Address     string          `json:"address"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// BranchListResponse represents a paginated list of branches
type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// List returns one page of branches ordered by name
func (s *BranchService) List(page, pageSize int) (*BranchListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	branches, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	responses := make([]BranchResponse, len(branches))
	for i := range branches {
		responses[i] = *branchToResponse(&branches[i])
	}

	return &BranchListResponse{
		Branches: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID returns a single branch
func (s *BranchService) GetByID(id uuid.UUID) (*BranchResponse, error) {
	branch, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return branchToResponse(branch), nil
}

// Create creates a new branch with a unique name
func (s *BranchService) Create(req *CreateBranchRequest) (*BranchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrBranchExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check branch name: %w", err)
	}

	branch := &models.Branch{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Region:      req.Region,
		Address:     req.Address,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(branch); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	return branchToResponse(branch), nil
}

// Update updates branch details. The name is immutable once created since
// it is referenced by external systems.
func (s *BranchService) Update(id uuid.UUID, req *UpdateBranchRequest) (*BranchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	branch, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	if req.DisplayName != nil {
		branch.DisplayName = *req.DisplayName
	}
	if req.Region != nil {
		branch.Region = *req.Region
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Metadata != nil {
		branch.Metadata = req.Metadata
	}

	if err := s.repo.Update(branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}

	return branchToResponse(branch), nil
}

// Delete removes a branch and everything it owns
func (s *BranchService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBranchNotFound
		}
		return fmt.Errorf("failed to get branch: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}

func branchToResponse(b *models.Branch) *BranchResponse {
	return &BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		DisplayName: b.DisplayName,
		Region:      b.Region,
		Address:     b.Address,
		Metadata:    b.Metadata,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}
