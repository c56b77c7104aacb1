package testutils

import (
	"time"

	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WithTenant returns middleware installing a caller identity the way the
// auth middleware would, for handler tests that bypass token validation.
func WithTenant(subject string, branchID uuid.UUID, crossTenant bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(tenant.ContextKeySubject, subject)
		c.Set(tenant.ContextKeyBranchID, branchID)
		c.Set(tenant.ContextKeyCrossTenant, crossTenant)
		c.Next()
	}
}

// TenantContext builds a tenant context directly, for service and
// repository tests that skip the HTTP layer.
func TenantContext(branchID uuid.UUID) tenant.Context {
	return tenant.Context{
		Subject:  "test-user@" + branchID.String()[:8],
		BranchID: branchID,
	}
}

// BranchFactory provides methods to create test Branch data
type BranchFactory struct{}

// NewBranchFactory creates a new BranchFactory
func NewBranchFactory() *BranchFactory {
	return &BranchFactory{}
}

// Create creates a test Branch with default values
func (f *BranchFactory) Create() *models.Branch {
	id := uuid.New()
	return &models.Branch{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-branch-" + id.String()[:8],
		DisplayName: "Test Branch",
		Region:      "Test Region",
	}
}

// WithName sets a custom name for the branch
func (f *BranchFactory) WithName(name string) *models.Branch {
	branch := f.Create()
	branch.Name = name
	branch.DisplayName = name
	return branch
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember owned by branchID
func (f *TeamMemberFactory) Create(branchID uuid.UUID) *models.TeamMember {
	id := uuid.New()
	member := &models.TeamMember{
		FullName: "Jordan Reyes",
		Email:    "jordan." + id.String()[:8] + "@test.com",
		JobTitle: "Site Supervisor",
		Status:   models.EmploymentStatusActive,
	}
	member.ID = id
	member.BranchID = branchID
	member.Version = 1
	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	return member
}

// VehicleFactory provides methods to create test Vehicle data
type VehicleFactory struct{}

// NewVehicleFactory creates a new VehicleFactory
func NewVehicleFactory() *VehicleFactory {
	return &VehicleFactory{}
}

// Create creates a test Vehicle owned by branchID
func (f *VehicleFactory) Create(branchID uuid.UUID) *models.Vehicle {
	id := uuid.New()
	vehicle := &models.Vehicle{
		Registration: "TST-" + id.String()[:6],
		Make:         "Isuzu",
		Model:        "NPR 75",
		Odometer:     54000,
	}
	vehicle.ID = id
	vehicle.BranchID = branchID
	vehicle.Version = 1
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()
	return vehicle
}

// WithRegistration sets a custom registration
func (f *VehicleFactory) WithRegistration(branchID uuid.UUID, registration string) *models.Vehicle {
	vehicle := f.Create(branchID)
	vehicle.Registration = registration
	return vehicle
}

// ContractorFactory provides methods to create test Contractor data
type ContractorFactory struct{}

// NewContractorFactory creates a new ContractorFactory
func NewContractorFactory() *ContractorFactory {
	return &ContractorFactory{}
}

// Create creates a test Contractor owned by branchID
func (f *ContractorFactory) Create(branchID uuid.UUID) *models.Contractor {
	id := uuid.New()
	contractor := &models.Contractor{
		CompanyName:     "Acme Scaffolding " + id.String()[:6],
		Trade:           "scaffolding",
		ContactName:     "Pat Quinn",
		ContactEmail:    "pat." + id.String()[:8] + "@test.com",
		InductionStatus: models.InductionStatusNotStarted,
	}
	contractor.ID = id
	contractor.BranchID = branchID
	contractor.Version = 1
	contractor.CreatedAt = time.Now()
	contractor.UpdatedAt = time.Now()
	return contractor
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates a test Equipment asset owned by branchID
func (f *EquipmentFactory) Create(branchID uuid.UUID) *models.Equipment {
	id := uuid.New()
	equipment := &models.Equipment{
		AssetTag:  "TAG-" + id.String()[:8],
		Category:  "generator",
		Condition: models.EquipmentConditionServiceable,
	}
	equipment.ID = id
	equipment.BranchID = branchID
	equipment.Version = 1
	equipment.CreatedAt = time.Now()
	equipment.UpdatedAt = time.Now()
	return equipment
}

// PermitFactory provides methods to create test Permit data
type PermitFactory struct{}

// NewPermitFactory creates a new PermitFactory
func NewPermitFactory() *PermitFactory {
	return &PermitFactory{}
}

// Create creates a test Permit owned by branchID
func (f *PermitFactory) Create(branchID uuid.UUID) *models.Permit {
	id := uuid.New()
	permit := &models.Permit{
		PermitType: "hot_work",
		Status:     models.PermitStatusDraft,
		IssuedTo:   "Acme Scaffolding",
	}
	permit.ID = id
	permit.BranchID = branchID
	permit.Version = 1
	permit.CreatedAt = time.Now()
	permit.UpdatedAt = time.Now()
	return permit
}

// VehicleInspectionFactory provides methods to create test VehicleInspection data
type VehicleInspectionFactory struct{}

// NewVehicleInspectionFactory creates a new VehicleInspectionFactory
func NewVehicleInspectionFactory() *VehicleInspectionFactory {
	return &VehicleInspectionFactory{}
}

// Create creates a test inspection for vehicleID owned by branchID
func (f *VehicleInspectionFactory) Create(branchID, vehicleID uuid.UUID) *models.VehicleInspection {
	id := uuid.New()
	inspection := &models.VehicleInspection{
		VehicleID:   vehicleID,
		InspectedAt: time.Now().Add(-24 * time.Hour),
		Inspector:   "Dana Whitfield",
		Result:      models.InspectionResultPass,
	}
	inspection.ID = id
	inspection.BranchID = branchID
	inspection.Version = 1
	inspection.CreatedAt = time.Now()
	inspection.UpdatedAt = time.Now()
	return inspection
}

// TrainingRecordFactory provides methods to create test TrainingRecord data
type TrainingRecordFactory struct{}

// NewTrainingRecordFactory creates a new TrainingRecordFactory
func NewTrainingRecordFactory() *TrainingRecordFactory {
	return &TrainingRecordFactory{}
}

// Create creates a test training record for memberID owned by branchID
func (f *TrainingRecordFactory) Create(branchID, memberID uuid.UUID) *models.TrainingRecord {
	id := uuid.New()
	record := &models.TrainingRecord{
		TeamMemberID: memberID,
		Course:       "Working at Heights",
		CompletedAt:  time.Now().Add(-72 * time.Hour),
		Provider:     "SafetyFirst Training",
	}
	record.ID = id
	record.BranchID = branchID
	record.Version = 1
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	return record
}
