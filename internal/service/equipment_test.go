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

type EquipmentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockEquipmentRepositoryInterface
	equipmentService *service.EquipmentService
	tctx             tenant.Context
	whitelist        query.Whitelist
}

func (suite *EquipmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.equipmentService = service.NewEquipmentService(suite.mockRepo, ratelimit.New(100, time.Minute), validator.New())
	suite.tctx = tenant.Context{Subject: "ops@south-metro", BranchID: uuid.New()}
	suite.whitelist = query.NewWhitelist("asset_tag", "asset_tag", "category", "next_test_at")
}

func (suite *EquipmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EquipmentServiceTestSuite) testAsset() *models.Equipment {
	return &models.Equipment{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{ID: uuid.New()},
			BranchID:  suite.tctx.BranchID,
			Version:   1,
		},
		AssetTag:  "GEN-0042",
		Category:  "generator",
		Condition: models.EquipmentConditionServiceable,
	}
}

func (suite *EquipmentServiceTestSuite) TestList_Success() {
	asset := suite.testAsset()
	spec := query.Build(suite.whitelist, query.Params{Direction: "desc"})
	suite.mockRepo.EXPECT().Whitelist().Return(suite.whitelist)
	suite.mockRepo.EXPECT().List(suite.tctx, spec).Return([]models.Equipment{*asset}, int64(1), nil)

	resp, err := suite.equipmentService.List(suite.tctx, query.Params{Direction: "desc"})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Equipment, 1)
	assert.Equal(suite.T(), "GEN-0042", resp.Equipment[0].AssetTag)
}

func (suite *EquipmentServiceTestSuite) TestCreate_DefaultsToServiceable() {
	req := &service.CreateEquipmentRequest{AssetTag: "LAD-0007", Category: "ladder"}
	suite.mockRepo.EXPECT().GetByAssetTag(suite.tctx, "LAD-0007").Return(nil, apperrors.ErrEquipmentNotFound)
	suite.mockRepo.EXPECT().Create(suite.tctx, gomock.Any()).DoAndReturn(
		func(tctx tenant.Context, e *models.Equipment) error {
			e.ID = uuid.New()
			e.BranchID = tctx.BranchID
			e.Version = 1
			return nil
		})

	resp, err := suite.equipmentService.Create(suite.tctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.EquipmentConditionServiceable, resp.Condition)
}

func (suite *EquipmentServiceTestSuite) TestCreate_DuplicateAssetTag() {
	existing := suite.testAsset()
	req := &service.CreateEquipmentRequest{AssetTag: existing.AssetTag}
	suite.mockRepo.EXPECT().GetByAssetTag(suite.tctx, existing.AssetTag).Return(existing, nil)

	_, err := suite.equipmentService.Create(suite.tctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEquipmentExists)
}

func (suite *EquipmentServiceTestSuite) TestCreate_InvalidCondition() {
	req := &service.CreateEquipmentRequest{AssetTag: "GEN-0001", Condition: "broken"}

	_, err := suite.equipmentService.Create(suite.tctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EquipmentServiceTestSuite) TestUpdate_StaleVersionConflict() {
	asset := suite.testAsset()
	asset.Version = 7
	stale := int64(6)
	suite.mockRepo.EXPECT().UpdateGuarded(suite.tctx, asset.ID, &stale, gomock.Any()).
		Return(nil, apperrors.NewConflictError("equipment", stale, asset.Version, asset))

	_, err := suite.equipmentService.Update(suite.tctx, asset.ID, &service.UpdateEquipmentRequest{Version: &stale})

	conflict, ok := apperrors.AsConflict(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), int64(7), conflict.CurrentVersion)
	assert.Equal(suite.T(), asset, conflict.CurrentPayload)
}

func (suite *EquipmentServiceTestSuite) TestUpdate_ConditionChange() {
	asset := suite.testAsset()
	needsRepair := models.EquipmentConditionNeedsRepair
	suite.mockRepo.EXPECT().UpdateGuarded(suite.tctx, asset.ID, gomock.Nil(), gomock.Any()).DoAndReturn(
		func(tctx tenant.Context, id uuid.UUID, submitted *int64, mutate func(*models.Equipment) error) (*models.Equipment, error) {
			if err := mutate(asset); err != nil {
				return nil, err
			}
			asset.Version = 2
			return asset, nil
		})

	resp, err := suite.equipmentService.Update(suite.tctx, asset.ID, &service.UpdateEquipmentRequest{Condition: &needsRepair})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.EquipmentConditionNeedsRepair, resp.Condition)
}

func (suite *EquipmentServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(suite.tctx, id).Return(apperrors.ErrEquipmentNotFound)

	err := suite.equipmentService.Delete(suite.tctx, id)

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestEquipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentServiceTestSuite))
}
