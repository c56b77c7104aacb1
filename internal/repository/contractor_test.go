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

// ContractorRepositoryTestSuite tests the ContractorRepository
type ContractorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContractorRepository
	branch        *models.Branch
	otherBranch   *models.Branch
	tctx          tenant.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ContractorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewContractorRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ContractorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContractorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.branch = testutils.NewBranchFactory().WithName("riverside")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.branch).Error)
	suite.otherBranch = testutils.NewBranchFactory().WithName("hillcrest")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.otherBranch).Error)

	suite.tctx = testutils.TenantContext(suite.branch.ID)
}

// TearDownTest runs after each test
func (suite *ContractorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a contractor directly via gorm
func (suite *ContractorRepositoryTestSuite) createContractor(branchID uuid.UUID, company string, status models.InductionStatus) *models.Contractor {
	c := testutils.NewContractorFactory().Create(branchID)
	if company != "" {
		c.CompanyName = company
	}
	c.InductionStatus = status
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)
	return c
}

// TestGetByCompanyName tests the scoped company lookup
func (suite *ContractorRepositoryTestSuite) TestGetByCompanyName() {
	contractor := suite.createContractor(suite.branch.ID, "Delta Cranes", models.InductionStatusCompleted)
	suite.createContractor(suite.otherBranch.ID, "Delta Cranes", models.InductionStatusNotStarted)

	found, err := suite.repo.GetByCompanyName(suite.tctx, "Delta Cranes")

	suite.NoError(err)
	suite.Equal(contractor.ID, found.ID)
	suite.Equal(suite.branch.ID, found.BranchID)
}

// TestGetByCompanyNameForeignBranch tests that a foreign-branch company
// reports not found
func (suite *ContractorRepositoryTestSuite) TestGetByCompanyNameForeignBranch() {
	suite.createContractor(suite.otherBranch.ID, "Echo Electrical", models.InductionStatusCompleted)

	found, err := suite.repo.GetByCompanyName(suite.tctx, "Echo Electrical")

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(found)
}

// TestListByInductionStatus tests the induction-state filter under the scope
func (suite *ContractorRepositoryTestSuite) TestListByInductionStatus() {
	suite.createContractor(suite.branch.ID, "", models.InductionStatusExpired)
	suite.createContractor(suite.branch.ID, "", models.InductionStatusExpired)
	suite.createContractor(suite.branch.ID, "", models.InductionStatusCompleted)
	suite.createContractor(suite.otherBranch.ID, "", models.InductionStatusExpired)

	spec := query.Build(suite.repo.Whitelist(), query.Params{})
	contractors, total, err := suite.repo.ListByInductionStatus(suite.tctx, spec, models.InductionStatusExpired)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(contractors, 2)
	for _, c := range contractors {
		suite.Equal(models.InductionStatusExpired, c.InductionStatus)
		suite.Equal(suite.branch.ID, c.BranchID)
	}
}

// TestListDefaultOrdering tests that the default sort is company name
// ascending
func (suite *ContractorRepositoryTestSuite) TestListDefaultOrdering() {
	suite.createContractor(suite.branch.ID, "Zenith Roofing", models.InductionStatusCompleted)
	suite.createContractor(suite.branch.ID, "Apex Plumbing", models.InductionStatusCompleted)
	suite.createContractor(suite.branch.ID, "Mid Glazing", models.InductionStatusCompleted)

	spec := query.Build(suite.repo.Whitelist(), query.Params{})
	contractors, _, err := suite.repo.List(suite.tctx, spec)

	suite.NoError(err)
	suite.Len(contractors, 3)
	suite.Equal("Apex Plumbing", contractors[0].CompanyName)
	suite.Equal("Mid Glazing", contractors[1].CompanyName)
	suite.Equal("Zenith Roofing", contractors[2].CompanyName)
}

// TestRunContractorRepositoryTestSuite runs the test suite
func TestRunContractorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContractorRepositoryTestSuite))
}
