package models

import (
	"time"
)

// Equipment represents a tagged plant or tool asset owned by a branch
type Equipment struct {
	TenantModel
	AssetTag   string             `json:"asset_tag" gorm:"not null;size:40;index" validate:"required,max=40"`
	Category   string             `json:"category" gorm:"size:100"`
	Condition  EquipmentCondition `json:"condition" gorm:"not null;size:20;default:'serviceable'"`
	NextTestAt *time.Time         `json:"next_test_at,omitempty"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}
