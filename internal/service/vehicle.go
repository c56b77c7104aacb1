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

// VehicleService handles business logic for fleet vehicles and their
// inspections
type VehicleService struct {
	repo           repository.VehicleRepositoryInterface
	inspectionRepo repository.VehicleInspectionRepositoryInterface
	limiter        *ratelimit.Limiter
	validator      *validator.Validate
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo repository.VehicleRepositoryInterface, inspectionRepo repository.VehicleInspectionRepositoryInterface, limiter *ratelimit.Limiter, validator *validator.Validate) *VehicleService {
	return &VehicleService{
		repo:           repo,
		inspectionRepo: inspectionRepo,
		limiter:        limiter,
		validator:      validator,
	}
}

// CreateVehicleRequest represents the request to create a vehicle
type CreateVehicleRequest struct {
	Registration string     `json:"registration" validate:"required,max=20"`
	Make         string     `json:"make" validate:"max=100"`
	Model        string     `json:"model" validate:"max=100"`
	Odometer     int64      `json:"odometer" validate:"min=0"`
	ServiceDueAt *time.Time `json:"service_due_at,omitempty"`
}

// UpdateVehicleRequest represents the request to update a vehicle. Version is
// the optimistic concurrency token from a previous read; callers that omit it
// opt out of conflict detection.
type UpdateVehicleRequest struct {
	Version      *int64     `json:"version,omitempty"`
	Registration *string    `json:"registration,omitempty" validate:"omitempty,max=20"`
	Make         *string    `json:"make,omitempty" validate:"omitempty,max=100"`
	Model        *string    `json:"model,omitempty" validate:"omitempty,max=100"`
	Odometer     *int64     `json:"odometer,omitempty" validate:"omitempty,min=0"`
	ServiceDueAt *time.Time `json:"service_due_at,omitempty"`
}

// VehicleResponse represents the response for vehicle operations
type VehicleResponse struct {
	ID           uuid.UUID  `json:"id"`
	BranchID     uuid.UUID  `json:"branch_id"`
	Registration string     `json:"registration"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	Odometer     int64      `json:"odometer"`
	ServiceDueAt *time.Time `json:"service_due_at,omitempty"`
	Version      int64      `json:"version"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// VehicleListResponse represents a paginated list of vehicles
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreateInspectionRequest represents the request to record a vehicle inspection
type CreateInspectionRequest struct {
	InspectedAt time.Time               `json:"inspected_at" validate:"required"`
	Inspector   string                  `json:"inspector" validate:"required,max=200"`
	Result      models.InspectionResult `json:"result" validate:"required,oneof=pass fail"`
	Defects     string                  `json:"defects"`
}

// InspectionResponse represents the response for inspection operations
type InspectionResponse struct {
	ID          uuid.UUID               `json:"id"`
	VehicleID   uuid.UUID               `json:"vehicle_id"`
	BranchID    uuid.UUID               `json:"branch_id"`
	InspectedAt time.Time               `json:"inspected_at"`
	Inspector   string                  `json:"inspector"`
	Result      models.InspectionResult `json:"result"`
	Defects     string                  `json:"defects"`
	Version     int64                   `json:"version"`
}

// InspectionListResponse represents a paginated list of inspections
type InspectionListResponse struct {
	Inspections []InspectionResponse `json:"inspections"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// List returns one page of the caller's vehicles. Raw sort parameters degrade
// to the declared defaults; the per-identity rate limit is checked before any
// query is built.
func (s *VehicleService) List(tctx tenant.Context, raw query.Params) (*VehicleListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	spec := query.Build(s.repo.Whitelist(), raw)
	vehicles, total, err := s.repo.List(tctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = *vehicleToResponse(&vehicles[i])
	}

	return &VehicleListResponse{
		Vehicles: responses,
		Total:    total,
		Page:     spec.Page,
		PageSize: spec.PageSize,
	}, nil
}

// GetByID returns a single vehicle visible to the caller
func (s *VehicleService) GetByID(tctx tenant.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.repo.GetByID(tctx, id)
	if err != nil {
		return nil, err
	}
	return vehicleToResponse(vehicle), nil
}

// Create registers a new vehicle in the caller's branch at version 1
func (s *VehicleService) Create(tctx tenant.Context, req *CreateVehicleRequest) (*VehicleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Registration must be unique within the branch
	existing, err := s.repo.GetByRegistration(tctx, req.Registration)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing vehicle: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrVehicleExists
	}

	vehicle := &models.Vehicle{
		Registration: req.Registration,
		Make:         req.Make,
		Model:        req.Model,
		Odometer:     req.Odometer,
		ServiceDueAt: req.ServiceDueAt,
	}
	if err := s.repo.Create(tctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return vehicleToResponse(vehicle), nil
}

// Update applies a version-guarded update. A stale version token surfaces as
// a conflict carrying the server's current state; an absent token always
// wins.
func (s *VehicleService) Update(tctx tenant.Context, id uuid.UUID, req *UpdateVehicleRequest) (*VehicleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	vehicle, err := s.repo.UpdateGuarded(tctx, id, req.Version, func(v *models.Vehicle) error {
		if req.Registration != nil {
			v.Registration = *req.Registration
		}
		if req.Make != nil {
			v.Make = *req.Make
		}
		if req.Model != nil {
			v.Model = *req.Model
		}
		if req.Odometer != nil {
			v.Odometer = *req.Odometer
		}
		if req.ServiceDueAt != nil {
			v.ServiceDueAt = req.ServiceDueAt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicleToResponse(vehicle), nil
}

// Delete removes a vehicle from the caller's branch
func (s *VehicleService) Delete(tctx tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(tctx, id)
}

// ListInspections returns one page of a vehicle's inspections
func (s *VehicleService) ListInspections(tctx tenant.Context, vehicleID uuid.UUID, raw query.Params) (*InspectionListResponse, error) {
	if !s.limiter.Allow(tctx.Subject) {
		return nil, apperrors.NewRateLimitError(int(s.limiter.RetryAfter(tctx.Subject).Seconds()))
	}

	// A foreign-branch vehicle reads as absent
	if _, err := s.repo.GetByID(tctx, vehicleID); err != nil {
		return nil, err
	}

	spec := query.Build(s.inspectionRepo.Whitelist(), raw)
	inspections, total, err := s.inspectionRepo.ListByVehicle(tctx, spec, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	responses := make([]InspectionResponse, len(inspections))
	for i := range inspections {
		responses[i] = *inspectionToResponse(&inspections[i])
	}

	return &InspectionListResponse{
		Inspections: responses,
		Total:       total,
		Page:        spec.Page,
		PageSize:    spec.PageSize,
	}, nil
}

// CreateInspection records an inspection against a vehicle in the caller's branch
func (s *VehicleService) CreateInspection(tctx tenant.Context, vehicleID uuid.UUID, req *CreateInspectionRequest) (*InspectionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.InspectedAt.After(time.Now()) {
		return nil, apperrors.NewValidationError("inspected_at", "cannot be in the future")
	}

	if _, err := s.repo.GetByID(tctx, vehicleID); err != nil {
		return nil, err
	}

	inspection := &models.VehicleInspection{
		VehicleID:   vehicleID,
		InspectedAt: req.InspectedAt,
		Inspector:   req.Inspector,
		Result:      req.Result,
		Defects:     req.Defects,
	}
	if err := s.inspectionRepo.Create(tctx, inspection); err != nil {
		return nil, fmt.Errorf("failed to create inspection: %w", err)
	}

	return inspectionToResponse(inspection), nil
}

func vehicleToResponse(v *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		BranchID:     v.BranchID,
		Registration: v.Registration,
		Make:         v.Make,
		Model:        v.Model,
		Odometer:     v.Odometer,
		ServiceDueAt: v.ServiceDueAt,
		Version:      v.Version,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}

func inspectionToResponse(i *models.VehicleInspection) *InspectionResponse {
	return &InspectionResponse{
		ID:          i.ID,
		VehicleID:   i.VehicleID,
		BranchID:    i.BranchID,
		InspectedAt: i.InspectedAt,
		Inspector:   i.Inspector,
		Result:      i.Result,
		Defects:     i.Defects,
		Version:     i.Version,
	}
}
