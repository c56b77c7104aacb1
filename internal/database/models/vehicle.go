package models

import (
	"time"
)

// Vehicle represents a fleet vehicle owned by a branch
type Vehicle struct {
	TenantModel
	Registration string     `json:"registration" gorm:"not null;size:20;index" validate:"required,max=20"`
	Make         string     `json:"make" gorm:"size:100"`
	Model        string     `json:"model" gorm:"size:100"`
	Odometer     int64      `json:"odometer" gorm:"not null;default:0" validate:"min=0"`
	ServiceDueAt *time.Time `json:"service_due_at,omitempty"`

	// Relationships
	Inspections []VehicleInspection `json:"inspections,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}
