package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingRecordRepository handles database operations for training records
type TrainingRecordRepository struct {
	*VersionedRepository[models.TrainingRecord, *models.TrainingRecord]
}

// NewTrainingRecordRepository creates a new training record repository
func NewTrainingRecordRepository(db *gorm.DB) *TrainingRecordRepository {
	return &TrainingRecordRepository{
		VersionedRepository: NewVersionedRepository[models.TrainingRecord, *models.TrainingRecord](
			db,
			"training record",
			query.NewWhitelist("completed_at",
				"course", "completed_at", "expires_at", "provider", "created_at"),
		),
	}
}

// ListByTeamMember retrieves training records for one team member with pagination
func (r *TrainingRecordRepository) ListByTeamMember(tctx tenant.Context, spec query.Spec, teamMemberID uuid.UUID) ([]models.TrainingRecord, int64, error) {
	return r.ListBy(tctx, spec, "team_member_id = ?", teamMemberID)
}
