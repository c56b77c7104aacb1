package models

import (
	"time"
)

// Permit represents a work permit issued by a branch
type Permit struct {
	TenantModel
	PermitType string       `json:"permit_type" gorm:"not null;size:100" validate:"required,max=100"`
	Status     PermitStatus `json:"status" gorm:"not null;size:20;default:'draft'"`
	IssuedTo   string       `json:"issued_to" gorm:"size:200"`
	ValidFrom  *time.Time   `json:"valid_from,omitempty"`
	ValidTo    *time.Time   `json:"valid_to,omitempty"`
	Notes      string       `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Permit
func (Permit) TableName() string {
	return "permits"
}
