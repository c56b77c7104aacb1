package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BranchRepositoryInterface defines the interface for branch repository operations
type BranchRepositoryInterface interface {
	Create(branch *models.Branch) error
	GetByID(id uuid.UUID) (*models.Branch, error)
	GetByName(name string) (*models.Branch, error)
	GetAll(limit, offset int) ([]models.Branch, int64, error)
	Update(branch *models.Branch) error
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Store[models.TeamMember]
	GetByEmail(tctx tenant.Context, email string) (*models.TeamMember, error)
}

// ContractorRepositoryInterface defines the interface for contractor repository operations
type ContractorRepositoryInterface interface {
	Store[models.Contractor]
	GetByCompanyName(tctx tenant.Context, companyName string) (*models.Contractor, error)
	ListByInductionStatus(tctx tenant.Context, spec query.Spec, status models.InductionStatus) ([]models.Contractor, int64, error)
}

// VehicleRepositoryInterface defines the interface for vehicle repository operations
type VehicleRepositoryInterface interface {
	Store[models.Vehicle]
	GetByRegistration(tctx tenant.Context, registration string) (*models.Vehicle, error)
}

// VehicleInspectionRepositoryInterface defines the interface for inspection repository operations
type VehicleInspectionRepositoryInterface interface {
	Store[models.VehicleInspection]
	ListByVehicle(tctx tenant.Context, spec query.Spec, vehicleID uuid.UUID) ([]models.VehicleInspection, int64, error)
}

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Store[models.Equipment]
	GetByAssetTag(tctx tenant.Context, assetTag string) (*models.Equipment, error)
}

// PermitRepositoryInterface defines the interface for permit repository operations
type PermitRepositoryInterface interface {
	Store[models.Permit]
	ListByStatus(tctx tenant.Context, spec query.Spec, status models.PermitStatus) ([]models.Permit, int64, error)
}

// TrainingRecordRepositoryInterface defines the interface for training record repository operations
type TrainingRecordRepositoryInterface interface {
	Store[models.TrainingRecord]
	ListByTeamMember(tctx tenant.Context, spec query.Spec, teamMemberID uuid.UUID) ([]models.TrainingRecord, int64, error)
}
