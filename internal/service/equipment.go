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

// EquipmentService handles business logic for equipment assets
type EquipmentService struct {
	repo      repository.EquipmentRepositoryInterface
	limiter   *ratelimit.Limiter
	validator *validator.Validate
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo repository.EquipmentRepositoryInterface, limiter *ratelimit.Limiter, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{repo: repo, limiter: limiter, validator: validator}
}

// CreateEquipmentRequest represents the request to register an equipment asset
type CreateEquipmentRequest struct {
	AssetTag   string                    `json:"asset_tag" validate:"required,max=40"`
	Category   string                    `json:"category" validate:"max=100"`
	Condition  models.EquipmentCondition `json:"condition" validate:"omitempty,oneof=serviceable needs_repair out_of_service awaiting_test"`
	NextTestAt *time.Time                `json:"next_test_at,omitempty"`
}

// UpdateEquipmentRequest represents the request to update an equipment asset
type UpdateEquipmentRequest struct {
	Version    *int64                     `json:"version,omitempty"`
	AssetTag   *string                    `json:"asset_tag,omitempty" validate:"omitempty,max=40"`
	Category   *string                    `json:"category,omitempty" validate:"omitempty,max=100"`
	Condition  *models.EquipmentCondition `json:"condition,omitempty" validate:"omitempty,oneof=serviceable needs_repair out_of_service awaiting_test"`
	NextTestAt *time.Time                 `json:"next_test_at,omitempty"`
}

// EquipmentResponse represents the response for equipment operations
type EquipmentResponse struct {
	ID         uuid.UUID                 `json:"id"`
	BranchID   uuid.UUID                 `json:"branch_id"`
	AssetTag   string                    `json:"asset_tag"`
	Category   string                    `json:"category"`
	Condition  models.EquipmentCondition `json:"condition"`
	NextTestAt *time.Time                `json:"next_test_at,omitempty"`
	Version    int64                     `json:"version"`
	CreatedAt  string                    `json:"created_at"`
	UpdatedAt  string                    `json:"updated_at"`
}

// EquipmentListResponse represents a paginated list of equipment assets
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// List returns one page of the caller's equipment assets
func (s *EquipmentService) List(tctx tenant.Context, raw query.Params) (*EquipmentListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	spec := query.Build(s.repo.Whitelist(), raw)
	assets, total, err := s.repo.List(tctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	responses := make([]EquipmentResponse, len(assets))
	for i := range assets {
		responses[i] = *equipmentToResponse(&assets[i])
	}

	return &EquipmentListResponse{
		Equipment: responses,
		Total:     total,
		Page:      spec.Page,
		PageSize:  spec.PageSize,
	}, nil
}

// GetByID returns a single equipment asset visible to the caller
func (s *EquipmentService) GetByID(tctx tenant.Context, id uuid.UUID) (*EquipmentResponse, error) {
	asset, err := s.repo.GetByID(tctx, id)
	if err != nil {
		return nil, err
	}
	return equipmentToResponse(asset), nil
}

// Create registers a new equipment asset in the caller's branch at version 1
func (s *EquipmentService) Create(tctx tenant.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByAssetTag(tctx, req.AssetTag)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing equipment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEquipmentExists
	}

	condition := req.Condition
	if condition == "" {
		condition = models.EquipmentConditionServiceable
	}

	asset := &models.Equipment{
		AssetTag:   req.AssetTag,
		Category:   req.Category,
		Condition:  condition,
		NextTestAt: req.NextTestAt,
	}
	if err := s.repo.Create(tctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return equipmentToResponse(asset), nil
}

// Update applies a version-guarded update to an equipment asset
func (s *EquipmentService) Update(tctx tenant.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	asset, err := s.repo.UpdateGuarded(tctx, id, req.Version, func(e *models.Equipment) error {
		if req.AssetTag != nil {
			e.AssetTag = *req.AssetTag
		}
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Condition != nil {
			e.Condition = *req.Condition
		}
		if req.NextTestAt != nil {
			e.NextTestAt = req.NextTestAt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return equipmentToResponse(asset), nil
}

// Delete removes an equipment asset from the caller's branch
func (s *EquipmentService) Delete(tctx tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(tctx, id)
}

func equipmentToResponse(e *models.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:         e.ID,
		BranchID:   e.BranchID,
		AssetTag:   e.AssetTag,
		Category:   e.Category,
		Condition:  e.Condition,
		NextTestAt: e.NextTestAt,
		Version:    e.Version,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}
