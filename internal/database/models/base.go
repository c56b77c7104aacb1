package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// TenantModel extends BaseModel for branch-owned entities. BranchID is fixed
// for the entity's lifetime; moving a record across branches is modeled as
// delete + create. Version starts at 1 and is incremented exactly once per
// accepted mutation by the repository layer; callers never set it directly.
type TenantModel struct {
	BaseModel
	BranchID uuid.UUID `json:"branch_id" gorm:"type:uuid;not null;index"`
	Version  int64     `json:"version" gorm:"not null;default:1"`
}

// BeforeCreate seeds the version counter alongside the UUID.
func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if m.Version < 1 {
		m.Version = 1
	}
	return nil
}

// GetID returns the primary key.
func (m *TenantModel) GetID() uuid.UUID { return m.ID }

// GetBranchID returns the owning branch.
func (m *TenantModel) GetBranchID() uuid.UUID { return m.BranchID }

// SetBranchID assigns the owning branch at creation time. Repository-internal;
// the branch never changes afterwards.
func (m *TenantModel) SetBranchID(id uuid.UUID) { m.BranchID = id }

// GetVersion returns the optimistic concurrency token.
func (m *TenantModel) GetVersion() int64 { return m.Version }

// SetVersion overwrites the concurrency token. Repository-internal.
func (m *TenantModel) SetVersion(v int64) { m.Version = v }

// TenantOwned is implemented by every branch-scoped model through TenantModel.
type TenantOwned interface {
	GetID() uuid.UUID
	GetBranchID() uuid.UUID
	SetBranchID(uuid.UUID)
	GetVersion() int64
	SetVersion(int64)
}
