package models

import (
	"time"
)

// Contractor represents an external company engaged by a branch
type Contractor struct {
	TenantModel
	CompanyName     string          `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
	Trade           string          `json:"trade" gorm:"size:100"`
	ContactName     string          `json:"contact_name" gorm:"size:200"`
	ContactEmail    string          `json:"contact_email" gorm:"size:200" validate:"omitempty,email"`
	InductionStatus InductionStatus `json:"induction_status" gorm:"not null;size:20;default:'not_started'"`
	InsuranceExpiry *time.Time      `json:"insurance_expiry,omitempty"`
}

// TableName returns the table name for Contractor
func (Contractor) TableName() string {
	return "contractors"
}
