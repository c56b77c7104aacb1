package models

import (
	"encoding/json"
)

// Branch represents an organizational branch, the tenant boundary for
// everything else in the system. Branches themselves are managed by
// cross-branch administrators only.
type Branch struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Region      string          `json:"region" gorm:"size:100"`
	Address     string          `json:"address" gorm:"type:text"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	TeamMembers []TeamMember `json:"team_members,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
	Contractors []Contractor `json:"contractors,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
	Vehicles    []Vehicle    `json:"vehicles,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
	Equipment   []Equipment  `json:"equipment,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
	Permits     []Permit     `json:"permits,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Branch
func (Branch) TableName() string {
	return "branches"
}
