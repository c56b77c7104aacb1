package service_test

import (
	"testing"
	"time"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/mocks"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/ratelimit"
	"fieldsafe-backend/internal/service"
	"fieldsafe-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContractorServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockContractorRepositoryInterface
	contractorService *service.ContractorService
	tctx              tenant.Context
	whitelist         query.Whitelist
}

func (suite *ContractorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContractorRepositoryInterface(suite.ctrl)
	suite.contractorService = service.NewContractorService(suite.mockRepo, ratelimit.New(100, time.Minute), validator.New())
	suite.tctx = tenant.Context{Subject: "ops@north-metro", BranchID: uuid.New()}
	suite.whitelist = query.NewWhitelist("company_name", "company_name", "trade", "created_at")
}

func (suite *ContractorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContractorServiceTestSuite) testContractor() *models.Contractor {
	return &models.Contractor{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{ID: uuid.New()},
			BranchID:  suite.tctx.BranchID,
			Version:   1,
		},
		CompanyName:     "Apex Scaffolding",
		Trade:           "scaffolding",
		ContactName:     "Dana Kelly",
		InductionStatus: models.InductionStatusCompleted,
	}
}

func (suite *ContractorServiceTestSuite) TestList_NoFilter() {
	contractor := suite.testContractor()
	spec := query.Build(suite.whitelist, query.Params{})
	suite.mockRepo.EXPECT().Whitelist().Return(suite.whitelist)
	suite.mockRepo.EXPECT().List(suite.tctx, spec).Return([]models.Contractor{*contractor}, int64(1), nil)

	resp, err := suite.contractorService.List(suite.tctx, query.Params{}, "")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Contractors, 1)
	assert.Equal(suite.T(), "Apex Scaffolding", resp.Contractors[0].CompanyName)
}

func (suite *ContractorServiceTestSuite) TestList_InductionFilter() {
	spec := query.Build(suite.whitelist, query.Params{})
	suite.mockRepo.EXPECT().Whitelist().Return(suite.whitelist)
	suite.mockRepo.EXPECT().ListByInductionStatus(suite.tctx, spec, models.InductionStatusExpired).
		Return([]models.Contractor{}, int64(0), nil)

	resp, err := suite.contractorService.List(suite.tctx, query.Params{}, "expired")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), resp.Total)
}

func (suite *ContractorServiceTestSuite) TestList_UnknownFilterIgnored() {
	spec := query.Build(suite.whitelist, query.Params{})
	suite.mockRepo.EXPECT().Whitelist().Return(suite.whitelist)
	suite.mockRepo.EXPECT().List(suite.tctx, spec).Return([]models.Contractor{}, int64(0), nil)

	_, err := suite.contractorService.List(suite.tctx, query.Params{}, "finished")

	assert.NoError(suite.T(), err)
}

func (suite *ContractorServiceTestSuite) TestCreate_Success() {
	req := &service.CreateContractorRequest{
		CompanyName: "Delta Electrical",
		Trade:       "electrical",
	}
	suite.mockRepo.EXPECT().GetByCompanyName(suite.tctx, "Delta Electrical").Return(nil, apperrors.ErrContractorNotFound)
	suite.mockRepo.EXPECT().Create(suite.tctx, gomock.Any()).DoAndReturn(
		func(tctx tenant.Context, c *models.Contractor) error {
			c.ID = uuid.New()
			c.BranchID = tctx.BranchID
			c.Version = 1
			return nil
		})

	resp, err := suite.contractorService.Create(suite.tctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InductionStatusNotStarted, resp.InductionStatus)
}

func (suite *ContractorServiceTestSuite) TestCreate_DuplicateCompany() {
	existing := suite.testContractor()
	req := &service.CreateContractorRequest{CompanyName: existing.CompanyName}
	suite.mockRepo.EXPECT().GetByCompanyName(suite.tctx, existing.CompanyName).Return(existing, nil)

	_, err := suite.contractorService.Create(suite.tctx, req)

	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *ContractorServiceTestSuite) TestUpdate_StaleVersionConflict() {
	contractor := suite.testContractor()
	contractor.Version = 2
	stale := int64(1)
	suite.mockRepo.EXPECT().UpdateGuarded(suite.tctx, contractor.ID, &stale, gomock.Any()).
		Return(nil, apperrors.NewConflictError("contractor", stale, contractor.Version, contractor))

	_, err := suite.contractorService.Update(suite.tctx, contractor.ID, &service.UpdateContractorRequest{Version: &stale})

	conflict, ok := apperrors.AsConflict(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), int64(2), conflict.CurrentVersion)
}

func (suite *ContractorServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.tctx, id).Return(nil, apperrors.ErrContractorNotFound)

	_, err := suite.contractorService.GetByID(suite.tctx, id)

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestContractorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractorServiceTestSuite))
}
