package models

// TeamMember represents an employee assigned to a branch
type TeamMember struct {
	TenantModel
	FullName    string           `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string           `json:"email" gorm:"not null;size:200;index" validate:"required,email"`
	PhoneNumber string           `json:"phone_number" gorm:"size:40"`
	JobTitle    string           `json:"job_title" gorm:"size:100"`
	Status      EmploymentStatus `json:"status" gorm:"not null;size:20;default:'active'"`

	// Relationships
	TrainingRecords []TrainingRecord `json:"training_records,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
