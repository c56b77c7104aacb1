package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for equipment assets
type EquipmentRepository struct {
	*VersionedRepository[models.Equipment, *models.Equipment]
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		VersionedRepository: NewVersionedRepository[models.Equipment, *models.Equipment](
			db,
			"equipment",
			query.NewWhitelist("asset_tag",
				"asset_tag", "category", "condition", "next_test_at", "created_at", "updated_at"),
		),
	}
}

// GetByAssetTag retrieves an equipment asset by tag within the caller's branch
func (r *EquipmentRepository) GetByAssetTag(tctx tenant.Context, assetTag string) (*models.Equipment, error) {
	return r.getScoped(tctx, "asset_tag = ?", assetTag)
}
