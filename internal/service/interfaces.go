package service

import (
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BranchServiceInterface defines the interface for branch service operations
type BranchServiceInterface interface {
	List(page, pageSize int) (*BranchListResponse, error)
	GetByID(id uuid.UUID) (*BranchResponse, error)
	Create(req *CreateBranchRequest) (*BranchResponse, error)
	Update(id uuid.UUID, req *UpdateBranchRequest) (*BranchResponse, error)
	Delete(id uuid.UUID) error
}

// TeamMemberServiceInterface defines the interface for team member service operations
type TeamMemberServiceInterface interface {
	List(tctx tenant.Context, raw query.Params) (*TeamMemberListResponse, error)
	GetByID(tctx tenant.Context, id uuid.UUID) (*TeamMemberResponse, error)
	Create(tctx tenant.Context, req *CreateTeamMemberRequest) (*TeamMemberResponse, error)
	Update(tctx tenant.Context, id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error)
	Delete(tctx tenant.Context, id uuid.UUID) error
	ListTrainingRecords(tctx tenant.Context, memberID uuid.UUID, raw query.Params) (*TrainingRecordListResponse, error)
	CreateTrainingRecord(tctx tenant.Context, memberID uuid.UUID, req *CreateTrainingRecordRequest) (*TrainingRecordResponse, error)
}

// ContractorServiceInterface defines the interface for contractor service operations
type ContractorServiceInterface interface {
	List(tctx tenant.Context, raw query.Params, inductionStatus string) (*ContractorListResponse, error)
	GetByID(tctx tenant.Context, id uuid.UUID) (*ContractorResponse, error)
	Create(tctx tenant.Context, req *CreateContractorRequest) (*ContractorResponse, error)
	Update(tctx tenant.Context, id uuid.UUID, req *UpdateContractorRequest) (*ContractorResponse, error)
	Delete(tctx tenant.Context, id uuid.UUID) error
}

// VehicleServiceInterface defines the interface for vehicle service operations
type VehicleServiceInterface interface {
	List(tctx tenant.Context, raw query.Params) (*VehicleListResponse, error)
	GetByID(tctx tenant.Context, id uuid.UUID) (*VehicleResponse, error)
	Create(tctx tenant.Context, req *CreateVehicleRequest) (*VehicleResponse, error)
	Update(tctx tenant.Context, id uuid.UUID, req *UpdateVehicleRequest) (*VehicleResponse, error)
	Delete(tctx tenant.Context, id uuid.UUID) error
	ListInspections(tctx tenant.Context, vehicleID uuid.UUID, raw query.Params) (*InspectionListResponse, error)
	CreateInspection(tctx tenant.Context, vehicleID uuid.UUID, req *CreateInspectionRequest) (*InspectionResponse, error)
}

// EquipmentServiceInterface defines the interface for equipment service operations
type EquipmentServiceInterface interface {
	List(tctx tenant.Context, raw query.Params) (*EquipmentListResponse, error)
	GetByID(tctx tenant.Context, id uuid.UUID) (*EquipmentResponse, error)
	Create(tctx tenant.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error)
	Update(tctx tenant.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error)
	Delete(tctx tenant.Context, id uuid.UUID) error
}

// PermitServiceInterface defines the interface for permit service operations
type PermitServiceInterface interface {
	List(tctx tenant.Context, raw query.Params, status string) (*PermitListResponse, error)
	GetByID(tctx tenant.Context, id uuid.UUID) (*PermitResponse, error)
	Create(tctx tenant.Context, req *CreatePermitRequest) (*PermitResponse, error)
	Update(tctx tenant.Context, id uuid.UUID, req *UpdatePermitRequest) (*PermitResponse, error)
	Delete(tctx tenant.Context, id uuid.UUID) error
}
