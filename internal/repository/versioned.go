package repository

import (
	"errors"
	"fmt"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Writers that carry no version token retry against fresh state when they
// lose a race; bounded so a pathological hot row surfaces as an error instead
// of a spin.
const casMaxRetries = 3

// Store is the persistence contract every branch-owned entity type exposes.
// All reads and writes are confined to the caller's branch unless the tenant
// context grants cross-branch access; updates go through the version-guarded
// protocol.
type Store[T any] interface {
	Create(tctx tenant.Context, entity *T) error
	GetByID(tctx tenant.Context, id uuid.UUID) (*T, error)
	List(tctx tenant.Context, spec query.Spec) ([]T, int64, error)
	UpdateGuarded(tctx tenant.Context, id uuid.UUID, submittedVersion *int64, mutate func(*T) error) (*T, error)
	Delete(tctx tenant.Context, id uuid.UUID) error
	Whitelist() query.Whitelist
}

// VersionedRepository implements Store for any model embedding TenantModel.
// Concurrency control is delegated entirely to the storage layer: the commit
// is a single conditional UPDATE on (id, version) checked via RowsAffected,
// so correctness holds across multiple process instances without any
// application-held locks.
type VersionedRepository[T any, PT interface {
	*T
	models.TenantOwned
}] struct {
	db        *gorm.DB
	entity    string
	whitelist query.Whitelist
}

// NewVersionedRepository creates a repository for one entity type. entity is
// the taxonomy name used in error payloads; whitelist is the sortable-field
// set the resource owner declares for its list endpoint.
func NewVersionedRepository[T any, PT interface {
	*T
	models.TenantOwned
}](db *gorm.DB, entity string, whitelist query.Whitelist) *VersionedRepository[T, PT] {
	return &VersionedRepository[T, PT]{db: db, entity: entity, whitelist: whitelist}
}

// Whitelist returns the declared sortable-field set for this resource.
func (r *VersionedRepository[T, PT]) Whitelist() query.Whitelist {
	return r.whitelist
}

// Create inserts a new entity at version 1. The owning branch is taken from
// the tenant context; only a cross-branch context may create records for a
// branch it names explicitly.
func (r *VersionedRepository[T, PT]) Create(tctx tenant.Context, entity *T) error {
	pe := PT(entity)
	if !tctx.CrossTenant || pe.GetBranchID() == uuid.Nil {
		pe.SetBranchID(tctx.BranchID)
	}
	pe.SetVersion(1)
	return r.db.Create(entity).Error
}

// GetByID loads an entity through the tenant scope. An entity that exists but
// belongs to a foreign branch is reported as not found, identical to a truly
// absent one.
func (r *VersionedRepository[T, PT]) GetByID(tctx tenant.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.Scopes(tctx.Scope()).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: r.entity}
		}
		return nil, err
	}
	return &entity, nil
}

// List executes a validated query spec under the tenant scope and returns one
// page plus the total count.
func (r *VersionedRepository[T, PT]) List(tctx tenant.Context, spec query.Spec) ([]T, int64, error) {
	return r.list(tctx, spec, "", nil)
}

// ListBy is List with an extra statically-declared predicate. cond comes from
// repository code, never from caller input.
func (r *VersionedRepository[T, PT]) ListBy(tctx tenant.Context, spec query.Spec, cond string, args ...interface{}) ([]T, int64, error) {
	return r.list(tctx, spec, cond, args)
}

func (r *VersionedRepository[T, PT]) list(tctx tenant.Context, spec query.Spec, cond string, args []interface{}) ([]T, int64, error) {
	var items []T
	var total int64

	counted := r.db.Model(new(T)).Scopes(tctx.Scope())
	if cond != "" {
		counted = counted.Where(cond, args...)
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.Scopes(tctx.Scope())
	if cond != "" {
		q = q.Where(cond, args...)
	}
	err := q.Order(spec.OrderClause()).
		Limit(spec.PageSize).
		Offset(spec.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateGuarded runs the read-compare-mutate-conditional-write cycle.
//
// With a version token: a mismatch against the current version, whether seen
// at load time or lost at the conditional write, yields a ConflictError
// carrying the server's current version and payload; the stored entity is
// untouched.
//
// Without a token: conflict detection is skipped by policy — the write always
// lands (retrying the cycle if it loses a race) and still increments the
// version, so a later versioned caller can detect that a write happened.
//
// A token of zero or less is invalid input, not a conflict.
func (r *VersionedRepository[T, PT]) UpdateGuarded(tctx tenant.Context, id uuid.UUID, submittedVersion *int64, mutate func(*T) error) (*T, error) {
	if submittedVersion != nil && *submittedVersion <= 0 {
		return nil, apperrors.ErrInvalidVersion
	}

	for attempt := 0; attempt < casMaxRetries; attempt++ {
		entity, err := r.GetByID(tctx, id)
		if err != nil {
			return nil, err
		}
		pe := PT(entity)
		current := pe.GetVersion()

		if submittedVersion != nil && *submittedVersion != current {
			return nil, apperrors.NewConflictError(r.entity, *submittedVersion, current, entity)
		}

		if err := mutate(entity); err != nil {
			return nil, err
		}

		rows, err := r.conditionalWrite(pe, current)
		if err != nil {
			return nil, err
		}
		if rows == 1 {
			return entity, nil
		}

		// Lost the race: another writer committed between our load and our
		// conditional write.
		if submittedVersion != nil {
			fresh, err := r.GetByID(tctx, id)
			if err != nil {
				return nil, err
			}
			return nil, apperrors.NewConflictError(r.entity, *submittedVersion, PT(fresh).GetVersion(), fresh)
		}
	}

	return nil, fmt.Errorf("update %s %s: too much contention", r.entity, id)
}

// conditionalWrite persists the mutated entity only if the stored version
// still equals expected. This is the single atomic step of the protocol;
// nothing is written before it and nothing needs compensating after it.
func (r *VersionedRepository[T, PT]) conditionalWrite(pe PT, expected int64) (int64, error) {
	pe.SetVersion(expected + 1)
	res := r.db.Model(pe).
		Select("*").
		Omit("id", "created_at", "branch_id").
		Where("version = ?", expected).
		Updates(pe)
	if res.Error != nil {
		pe.SetVersion(expected)
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		pe.SetVersion(expected)
	}
	return res.RowsAffected, nil
}

// Delete removes an entity under the tenant scope. Deletion is not
// version-guarded, but a foreign-branch record is still invisible and reports
// as not found.
func (r *VersionedRepository[T, PT]) Delete(tctx tenant.Context, id uuid.UUID) error {
	res := r.db.Scopes(tctx.Scope()).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: r.entity}
	}
	return nil
}

// getScoped is a helper for concrete repositories' lookup methods.
func (r *VersionedRepository[T, PT]) getScoped(tctx tenant.Context, cond string, args ...interface{}) (*T, error) {
	var entity T
	err := r.db.Scopes(tctx.Scope()).Where(cond, args...).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: r.entity}
		}
		return nil, err
	}
	return &entity, nil
}
