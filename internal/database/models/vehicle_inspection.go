package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleInspection records a safety inspection carried out on a vehicle.
// Inspections inherit the vehicle's branch so the tenant predicate applies
// without a join.
type VehicleInspection struct {
	TenantModel
	VehicleID   uuid.UUID        `json:"vehicle_id" gorm:"type:uuid;not null;index" validate:"required"`
	InspectedAt time.Time        `json:"inspected_at" gorm:"not null"`
	Inspector   string           `json:"inspector" gorm:"size:200" validate:"required,max=200"`
	Result      InspectionResult `json:"result" gorm:"not null;size:10"`
	Defects     string           `json:"defects" gorm:"type:text"`
}

// TableName returns the table name for VehicleInspection
func (VehicleInspection) TableName() string {
	return "vehicle_inspections"
}
