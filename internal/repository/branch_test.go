//go:build integration
// +build integration

package repository

import (
	"testing"

	"fieldsafe-backend/internal/database/models"
	"fieldsafe-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BranchRepositoryTestSuite tests the BranchRepository
type BranchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BranchRepository
}

// SetupSuite runs before all tests in the suite
func (suite *BranchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBranchRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *BranchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BranchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BranchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a branch directly via gorm
func (suite *BranchRepositoryTestSuite) createBranch(name string) *models.Branch {
	b := testutils.NewBranchFactory().WithName(name)
	suite.NoError(suite.baseTestSuite.DB.Create(b).Error)
	return b
}

// TestCreateAndGetByID tests branch creation and retrieval
func (suite *BranchRepositoryTestSuite) TestCreateAndGetByID() {
	branch := &models.Branch{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "dockside",
		DisplayName: "Dockside Operations",
		Region:      "South East",
	}

	suite.NoError(suite.repo.Create(branch))

	retrieved, err := suite.repo.GetByID(branch.ID)
	suite.NoError(err)
	suite.Equal("dockside", retrieved.Name)
	suite.Equal("Dockside Operations", retrieved.DisplayName)
}

// TestGetByName tests lookup by unique name
func (suite *BranchRepositoryTestSuite) TestGetByName() {
	branch := suite.createBranch("inland-hub")

	retrieved, err := suite.repo.GetByName("inland-hub")

	suite.NoError(err)
	suite.Equal(branch.ID, retrieved.ID)
}

// TestGetByNameNotFound tests lookup of an unknown name
func (suite *BranchRepositoryTestSuite) TestGetByNameNotFound() {
	retrieved, err := suite.repo.GetByName("no-such-branch")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetAll tests listing with name ordering and pagination
func (suite *BranchRepositoryTestSuite) TestGetAll() {
	suite.createBranch("charlie")
	suite.createBranch("alpha")
	suite.createBranch("bravo")

	branches, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(branches, 2)
	suite.Equal("alpha", branches[0].Name)
	suite.Equal("bravo", branches[1].Name)

	branches, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(branches, 1)
	suite.Equal("charlie", branches[0].Name)
}

// TestUpdate tests persisting branch changes
func (suite *BranchRepositoryTestSuite) TestUpdate() {
	branch := suite.createBranch("westgate")
	branch.DisplayName = "Westgate Regional"
	branch.Region = "West"

	suite.NoError(suite.repo.Update(branch))

	retrieved, err := suite.repo.GetByID(branch.ID)
	suite.NoError(err)
	suite.Equal("Westgate Regional", retrieved.DisplayName)
	suite.Equal("West", retrieved.Region)
}

// TestDeleteCascadesOwnedRecords tests that removing a branch removes
// everything it owns through FK cascades
func (suite *BranchRepositoryTestSuite) TestDeleteCascadesOwnedRecords() {
	branch := suite.createBranch("closing-down")
	vehicle := testutils.NewVehicleFactory().Create(branch.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(vehicle).Error)
	member := testutils.NewTeamMemberFactory().Create(branch.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(member).Error)

	suite.NoError(suite.repo.Delete(branch.ID))

	_, err := suite.repo.GetByID(branch.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Vehicle{}).
		Where("branch_id = ?", branch.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TeamMember{}).
		Where("branch_id = ?", branch.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestRunBranchRepositoryTestSuite runs the test suite
func TestRunBranchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BranchRepositoryTestSuite))
}
