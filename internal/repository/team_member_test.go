//go:build integration
// +build integration

package repository

import (
	"testing"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"
	"fieldsafe-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository and the
// training-record child listing
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	trainingRepo  *TrainingRecordRepository
	branch        *models.Branch
	otherBranch   *models.Branch
	tctx          tenant.Context
	otherTctx     tenant.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.trainingRepo = NewTrainingRecordRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.branch = testutils.NewBranchFactory().WithName("airport-depot")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.branch).Error)
	suite.otherBranch = testutils.NewBranchFactory().WithName("city-depot")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.otherBranch).Error)

	suite.tctx = testutils.TenantContext(suite.branch.ID)
	suite.otherTctx = testutils.TenantContext(suite.otherBranch.ID)
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a team member directly via gorm
func (suite *TeamMemberRepositoryTestSuite) createMember(branchID uuid.UUID, email string) *models.TeamMember {
	m := testutils.NewTeamMemberFactory().Create(branchID)
	if email != "" {
		m.Email = email
	}
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)
	return m
}

// TestGetByEmail tests the scoped email lookup
func (suite *TeamMemberRepositoryTestSuite) TestGetByEmail() {
	member := suite.createMember(suite.branch.ID, "sam.patel@fieldsafe.test")

	found, err := suite.repo.GetByEmail(suite.tctx, "sam.patel@fieldsafe.test")

	suite.NoError(err)
	suite.Equal(member.ID, found.ID)
}

// TestGetByEmailScopedPerBranch tests that the same email may exist in two
// branches and each caller only sees their own
func (suite *TeamMemberRepositoryTestSuite) TestGetByEmailScopedPerBranch() {
	mine := suite.createMember(suite.branch.ID, "shared@fieldsafe.test")
	theirs := suite.createMember(suite.otherBranch.ID, "shared@fieldsafe.test")

	found, err := suite.repo.GetByEmail(suite.tctx, "shared@fieldsafe.test")
	suite.NoError(err)
	suite.Equal(mine.ID, found.ID)

	found, err = suite.repo.GetByEmail(suite.otherTctx, "shared@fieldsafe.test")
	suite.NoError(err)
	suite.Equal(theirs.ID, found.ID)
}

// TestGetByEmailNotFound tests that a foreign-branch email reports not found
func (suite *TeamMemberRepositoryTestSuite) TestGetByEmailNotFound() {
	suite.createMember(suite.otherBranch.ID, "hidden@fieldsafe.test")

	found, err := suite.repo.GetByEmail(suite.tctx, "hidden@fieldsafe.test")

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(found)
}

// TestUpdateGuardedPartialMutation tests that untouched fields survive a
// versioned update
func (suite *TeamMemberRepositoryTestSuite) TestUpdateGuardedPartialMutation() {
	member := suite.createMember(suite.branch.ID, "")
	originalName := member.FullName

	version := int64(1)
	updated, err := suite.repo.UpdateGuarded(suite.tctx, member.ID, &version, func(m *models.TeamMember) error {
		m.Status = models.EmploymentStatusOnLeave
		return nil
	})

	suite.NoError(err)
	suite.Equal(int64(2), updated.Version)
	suite.Equal(models.EmploymentStatusOnLeave, updated.Status)
	suite.Equal(originalName, updated.FullName)

	stored, err := suite.repo.GetByID(suite.tctx, member.ID)
	suite.NoError(err)
	suite.Equal(originalName, stored.FullName)
	suite.Equal(models.EmploymentStatusOnLeave, stored.Status)
}

// TestListTrainingRecordsByMember tests the child listing with branch scoping
func (suite *TeamMemberRepositoryTestSuite) TestListTrainingRecordsByMember() {
	member := suite.createMember(suite.branch.ID, "")
	other := suite.createMember(suite.branch.ID, "")

	factory := testutils.NewTrainingRecordFactory()
	for i := 0; i < 3; i++ {
		suite.NoError(suite.baseTestSuite.DB.Create(factory.Create(suite.branch.ID, member.ID)).Error)
	}
	suite.NoError(suite.baseTestSuite.DB.Create(factory.Create(suite.branch.ID, other.ID)).Error)

	spec := query.Build(suite.trainingRepo.Whitelist(), query.Params{})
	records, total, err := suite.trainingRepo.ListByTeamMember(suite.tctx, spec, member.ID)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(records, 3)
	for _, r := range records {
		suite.Equal(member.ID, r.TeamMemberID)
	}
}

// TestDeleteCascadesTrainingRecords tests that deleting a member removes
// their training records through the FK cascade
func (suite *TeamMemberRepositoryTestSuite) TestDeleteCascadesTrainingRecords() {
	member := suite.createMember(suite.branch.ID, "")
	record := testutils.NewTrainingRecordFactory().Create(suite.branch.ID, member.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(record).Error)

	err := suite.repo.Delete(suite.tctx, member.ID)
	suite.NoError(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TrainingRecord{}).
		Where("team_member_id = ?", member.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestRunTeamMemberRepositoryTestSuite runs the test suite
func TestRunTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
