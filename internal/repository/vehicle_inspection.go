package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleInspectionRepository handles database operations for vehicle inspections
type VehicleInspectionRepository struct {
	*VersionedRepository[models.VehicleInspection, *models.VehicleInspection]
}

// NewVehicleInspectionRepository creates a new vehicle inspection repository
func NewVehicleInspectionRepository(db *gorm.DB) *VehicleInspectionRepository {
	return &VehicleInspectionRepository{
		VersionedRepository: NewVersionedRepository[models.VehicleInspection, *models.VehicleInspection](
			db,
			"vehicle inspection",
			query.NewWhitelist("inspected_at",
				"inspected_at", "inspector", "result", "created_at"),
		),
	}
}

// ListByVehicle retrieves inspections for one vehicle with pagination
func (r *VehicleInspectionRepository) ListByVehicle(tctx tenant.Context, spec query.Spec, vehicleID uuid.UUID) ([]models.VehicleInspection, int64, error) {
	return r.ListBy(tctx, spec, "vehicle_id = ?", vehicleID)
}
