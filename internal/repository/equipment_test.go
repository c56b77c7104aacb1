//go:build integration
// +build integration

package repository

import (
	"testing"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/tenant"
	"fieldsafe-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// EquipmentRepositoryTestSuite tests the EquipmentRepository
type EquipmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EquipmentRepository
	branch        *models.Branch
	otherBranch   *models.Branch
	tctx          tenant.Context
}

// SetupSuite runs before all tests in the suite
func (suite *EquipmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEquipmentRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *EquipmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EquipmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.branch = testutils.NewBranchFactory().WithName("plant-yard-a")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.branch).Error)
	suite.otherBranch = testutils.NewBranchFactory().WithName("plant-yard-b")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.otherBranch).Error)

	suite.tctx = testutils.TenantContext(suite.branch.ID)
}

// TearDownTest runs after each test
func (suite *EquipmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an equipment asset directly via gorm
func (suite *EquipmentRepositoryTestSuite) createEquipment(branchID uuid.UUID, tag string) *models.Equipment {
	e := testutils.NewEquipmentFactory().Create(branchID)
	if tag != "" {
		e.AssetTag = tag
	}
	suite.NoError(suite.baseTestSuite.DB.Create(e).Error)
	return e
}

// TestGetByAssetTag tests the scoped asset-tag lookup
func (suite *EquipmentRepositoryTestSuite) TestGetByAssetTag() {
	asset := suite.createEquipment(suite.branch.ID, "GEN-0042")
	suite.createEquipment(suite.otherBranch.ID, "GEN-0042")

	found, err := suite.repo.GetByAssetTag(suite.tctx, "GEN-0042")

	suite.NoError(err)
	suite.Equal(asset.ID, found.ID)
	suite.Equal(suite.branch.ID, found.BranchID)
}

// TestGetByAssetTagNotFound tests that an unknown tag reports not found
func (suite *EquipmentRepositoryTestSuite) TestGetByAssetTagNotFound() {
	found, err := suite.repo.GetByAssetTag(suite.tctx, "GEN-9999")

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(found)
}

// TestUpdateGuardedConditionLifecycle tests consecutive versioned writes each
// bumping the version once
func (suite *EquipmentRepositoryTestSuite) TestUpdateGuardedConditionLifecycle() {
	asset := suite.createEquipment(suite.branch.ID, "LAD-0007")

	version := int64(1)
	updated, err := suite.repo.UpdateGuarded(suite.tctx, asset.ID, &version, func(e *models.Equipment) error {
		e.Condition = models.EquipmentConditionNeedsRepair
		return nil
	})
	suite.NoError(err)
	suite.Equal(int64(2), updated.Version)

	version = 2
	updated, err = suite.repo.UpdateGuarded(suite.tctx, asset.ID, &version, func(e *models.Equipment) error {
		e.Condition = models.EquipmentConditionServiceable
		return nil
	})
	suite.NoError(err)
	suite.Equal(int64(3), updated.Version)
	suite.Equal(models.EquipmentConditionServiceable, updated.Condition)
}

// TestRunEquipmentRepositoryTestSuite runs the test suite
func TestRunEquipmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentRepositoryTestSuite))
}
