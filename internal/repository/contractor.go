package repository

import (
	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"gorm.io/gorm"
)

// ContractorRepository handles database operations for contractors
type ContractorRepository struct {
	*VersionedRepository[models.Contractor, *models.Contractor]
}

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{
		VersionedRepository: NewVersionedRepository[models.Contractor, *models.Contractor](
			db,
			"contractor",
			query.NewWhitelist("company_name",
				"company_name", "trade", "induction_status", "insurance_expiry", "created_at", "updated_at"),
		),
	}
}

// GetByCompanyName retrieves a contractor by company name within the caller's branch
func (r *ContractorRepository) GetByCompanyName(tctx tenant.Context, companyName string) (*models.Contractor, error) {
	return r.getScoped(tctx, "company_name = ?", companyName)
}

// ListByInductionStatus retrieves contractors in a given induction state
func (r *ContractorRepository) ListByInductionStatus(tctx tenant.Context, spec query.Spec, status models.InductionStatus) ([]models.Contractor, int64, error) {
	return r.ListBy(tctx, spec, "induction_status = ?", status)
}
