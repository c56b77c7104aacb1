package models

import (
	"time"

	"github.com/google/uuid"
)

// TrainingRecord tracks a course completion for a team member. Records
// inherit the member's branch so the tenant predicate applies without a join.
type TrainingRecord struct {
	TenantModel
	TeamMemberID uuid.UUID  `json:"team_member_id" gorm:"type:uuid;not null;index" validate:"required"`
	Course       string     `json:"course" gorm:"not null;size:200" validate:"required,max=200"`
	CompletedAt  time.Time  `json:"completed_at" gorm:"not null"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Provider     string     `json:"provider" gorm:"size:200"`
}

// TableName returns the table name for TrainingRecord
func (TrainingRecord) TableName() string {
	return "training_records"
}
