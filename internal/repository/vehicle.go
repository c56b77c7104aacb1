package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"gorm.io/gorm"
)

// VehicleRepository handles database operations for vehicles
type VehicleRepository struct {
	*VersionedRepository[models.Vehicle, *models.Vehicle]
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{
		VersionedRepository: NewVersionedRepository[models.Vehicle, *models.Vehicle](
			db,
			"vehicle",
			query.NewWhitelist("created_at",
				"registration", "make", "model", "odometer", "service_due_at", "created_at", "updated_at"),
		),
	}
}

// GetByRegistration retrieves a vehicle by registration within the caller's branch
func (r *VehicleRepository) GetByRegistration(tctx tenant.Context, registration string) (*models.Vehicle, error) {
	return r.getScoped(tctx, "registration = ?", registration)
}
