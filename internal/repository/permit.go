package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"gorm.io/gorm"
)

// PermitRepository handles database operations for work permits
type PermitRepository struct {
	*VersionedRepository[models.Permit, *models.Permit]
}

// NewPermitRepository creates a new permit repository
func NewPermitRepository(db *gorm.DB) *PermitRepository {
	return &PermitRepository{
		VersionedRepository: NewVersionedRepository[models.Permit, *models.Permit](
			db,
			"permit",
			query.NewWhitelist("created_at",
				"permit_type", "status", "issued_to", "valid_from", "valid_to", "created_at", "updated_at"),
		),
	}
}

// ListByStatus retrieves permits in a given lifecycle state
func (r *PermitRepository) ListByStatus(tctx tenant.Context, spec query.Spec, status models.PermitStatus) ([]models.Permit, int64, error) {
	return r.ListBy(tctx, spec, "status = ?", status)
}
