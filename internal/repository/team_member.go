package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	*VersionedRepository[models.TeamMember, *models.TeamMember]
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{
		VersionedRepository: NewVersionedRepository[models.TeamMember, *models.TeamMember](
			db,
			"team member",
			query.NewWhitelist("full_name",
				"full_name", "email", "job_title", "status", "created_at", "updated_at"),
		),
	}
}

// GetByEmail retrieves a team member by email within the caller's branch
func (r *TeamMemberRepository) GetByEmail(tctx tenant.Context, email string) (*models.TeamMember, error) {
	return r.getScoped(tctx, "email = ?", email)
}
