//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"

	"fieldsafe-backend/internal/database/models"
	apperrors "fieldsafe-backend/internal/errors"
	"fieldsafe-backend/internal/query"
	"fieldsafe-backend/internal/tenant"
	"fieldsafe-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VehicleRepositoryTestSuite tests the VehicleRepository against a real
// Postgres, including the tenant scope and the version-guarded update cycle.
type VehicleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *VehicleRepository
	inspectionRepo  *VehicleInspectionRepository
	branch          *models.Branch
	otherBranch     *models.Branch
	tctx            tenant.Context
	otherTctx       tenant.Context
	crossBranchCtx  tenant.Context
	defaultListSpec query.Spec
}

// SetupSuite runs before all tests in the suite
func (suite *VehicleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVehicleRepository(suite.baseTestSuite.DB)
	suite.inspectionRepo = NewVehicleInspectionRepository(suite.baseTestSuite.DB)
	suite.defaultListSpec = query.Build(suite.repo.Whitelist(), query.Params{})
}

// TearDownSuite runs after all tests in the suite
func (suite *VehicleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test: fresh DB, two branches, one context each
func (suite *VehicleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.branch = testutils.NewBranchFactory().WithName("north-metro")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.branch).Error)
	suite.otherBranch = testutils.NewBranchFactory().WithName("south-coast")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.otherBranch).Error)

	suite.tctx = testutils.TenantContext(suite.branch.ID)
	suite.otherTctx = testutils.TenantContext(suite.otherBranch.ID)
	suite.crossBranchCtx = tenant.Context{Subject: "hq-admin", CrossTenant: true}
}

// TearDownTest runs after each test
func (suite *VehicleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a vehicle directly via gorm
func (suite *VehicleRepositoryTestSuite) createVehicle(branchID uuid.UUID, registration string) *models.Vehicle {
	v := testutils.NewVehicleFactory().WithRegistration(branchID, registration)
	suite.NoError(suite.baseTestSuite.DB.Create(v).Error)
	return v
}

func int64Ptr(v int64) *int64 { return &v }

// TestCreate tests that creation stamps the caller's branch and version 1
func (suite *VehicleRepositoryTestSuite) TestCreate() {
	vehicle := &models.Vehicle{
		Registration: "FLT-001",
		Make:         "Isuzu",
		Model:        "NPR 75",
		Odometer:     12000,
	}

	err := suite.repo.Create(suite.tctx, vehicle)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, vehicle.ID)
	suite.Equal(suite.branch.ID, vehicle.BranchID)
	suite.Equal(int64(1), vehicle.Version)
}

// TestCreateIgnoresCallerSuppliedBranch tests that a branch-scoped caller
// cannot plant a record in a foreign branch
func (suite *VehicleRepositoryTestSuite) TestCreateIgnoresCallerSuppliedBranch() {
	vehicle := &models.Vehicle{Registration: "FLT-002"}
	vehicle.BranchID = suite.otherBranch.ID

	err := suite.repo.Create(suite.tctx, vehicle)

	suite.NoError(err)
	suite.Equal(suite.branch.ID, vehicle.BranchID)
}

// TestCreateCrossBranchKeepsNamedBranch tests that a cross-branch context may
// create records for a branch it names explicitly
func (suite *VehicleRepositoryTestSuite) TestCreateCrossBranchKeepsNamedBranch() {
	vehicle := &models.Vehicle{Registration: "FLT-003"}
	vehicle.BranchID = suite.otherBranch.ID

	err := suite.repo.Create(suite.crossBranchCtx, vehicle)

	suite.NoError(err)
	suite.Equal(suite.otherBranch.ID, vehicle.BranchID)
}

// TestGetByID tests retrieving a vehicle within the caller's branch
func (suite *VehicleRepositoryTestSuite) TestGetByID() {
	vehicle := suite.createVehicle(suite.branch.ID, "ABC-123")

	retrieved, err := suite.repo.GetByID(suite.tctx, vehicle.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(vehicle.ID, retrieved.ID)
	suite.Equal("ABC-123", retrieved.Registration)
	suite.Equal(int64(1), retrieved.Version)
}

// TestGetByIDNotFound tests retrieving a non-existent vehicle
func (suite *VehicleRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(suite.tctx, uuid.New())

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(retrieved)
}

// TestGetByIDForeignBranchReportsNotFound tests that a record owned by
// another branch is indistinguishable from an absent one
func (suite *VehicleRepositoryTestSuite) TestGetByIDForeignBranchReportsNotFound() {
	foreign := suite.createVehicle(suite.otherBranch.ID, "XYZ-999")

	retrieved, err := suite.repo.GetByID(suite.tctx, foreign.ID)

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(retrieved)
}

// TestGetByIDCrossBranchSeesEverything tests that the cross-branch context
// bypasses the scope
func (suite *VehicleRepositoryTestSuite) TestGetByIDCrossBranchSeesEverything() {
	foreign := suite.createVehicle(suite.otherBranch.ID, "XYZ-998")

	retrieved, err := suite.repo.GetByID(suite.crossBranchCtx, foreign.ID)

	suite.NoError(err)
	suite.Equal(foreign.ID, retrieved.ID)
}

// TestListScopedToBranch tests that listing never leaks foreign rows
func (suite *VehicleRepositoryTestSuite) TestListScopedToBranch() {
	suite.createVehicle(suite.branch.ID, "AAA-001")
	suite.createVehicle(suite.branch.ID, "AAA-002")
	suite.createVehicle(suite.otherBranch.ID, "BBB-001")

	vehicles, total, err := suite.repo.List(suite.tctx, suite.defaultListSpec)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(vehicles, 2)
	for _, v := range vehicles {
		suite.Equal(suite.branch.ID, v.BranchID)
	}
}

// TestListOrderingAndPagination tests whitelist-driven ordering with paging
func (suite *VehicleRepositoryTestSuite) TestListOrderingAndPagination() {
	suite.createVehicle(suite.branch.ID, "CCC-003")
	suite.createVehicle(suite.branch.ID, "AAA-001")
	suite.createVehicle(suite.branch.ID, "BBB-002")

	spec := query.Build(suite.repo.Whitelist(), query.Params{
		Sort: "registration", Direction: "desc", Page: "1", PageSize: "2",
	})
	page1, total, err := suite.repo.List(suite.tctx, spec)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page1, 2)
	suite.Equal("CCC-003", page1[0].Registration)
	suite.Equal("BBB-002", page1[1].Registration)

	spec.Page = 2
	page2, total, err := suite.repo.List(suite.tctx, spec)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page2, 1)
	suite.Equal("AAA-001", page2[0].Registration)
}

// TestUpdateGuardedVersionedSuccess tests the happy path: matching token,
// version bumped exactly once
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedVersionedSuccess() {
	vehicle := suite.createVehicle(suite.branch.ID, "UPD-001")

	updated, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(1), func(v *models.Vehicle) error {
		v.Odometer = 99000
		return nil
	})

	suite.NoError(err)
	suite.Equal(int64(2), updated.Version)
	suite.Equal(int64(99000), updated.Odometer)

	stored, err := suite.repo.GetByID(suite.tctx, vehicle.ID)
	suite.NoError(err)
	suite.Equal(int64(2), stored.Version)
	suite.Equal(int64(99000), stored.Odometer)
}

// TestUpdateGuardedStaleVersionConflict tests the interleaving: two callers
// read version 1, the first commits, the second's token is now stale and the
// conflict carries the fresh server state; only the first write is stored
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedStaleVersionConflict() {
	vehicle := suite.createVehicle(suite.branch.ID, "UPD-002")

	_, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(1), func(v *models.Vehicle) error {
		v.Odometer = 50000
		return nil
	})
	suite.NoError(err)

	updated, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(1), func(v *models.Vehicle) error {
		v.Odometer = 60000
		return nil
	})

	suite.Error(err)
	suite.Nil(updated)
	conflict, ok := apperrors.AsConflict(err)
	suite.True(ok)
	suite.Equal(int64(1), conflict.SubmittedVersion)
	suite.Equal(int64(2), conflict.CurrentVersion)
	serverState, ok := conflict.CurrentPayload.(*models.Vehicle)
	suite.True(ok)
	suite.Equal(int64(50000), serverState.Odometer)

	stored, err := suite.repo.GetByID(suite.tctx, vehicle.ID)
	suite.NoError(err)
	suite.Equal(int64(2), stored.Version)
	suite.Equal(int64(50000), stored.Odometer)
}

// TestUpdateGuardedUnversionedAlwaysLands tests that a caller without a token
// skips conflict detection but still increments the version
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedUnversionedAlwaysLands() {
	vehicle := suite.createVehicle(suite.branch.ID, "UPD-003")

	_, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(1), func(v *models.Vehicle) error {
		v.Odometer = 10000
		return nil
	})
	suite.NoError(err)

	updated, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, nil, func(v *models.Vehicle) error {
		v.Odometer = 20000
		return nil
	})

	suite.NoError(err)
	suite.Equal(int64(3), updated.Version)
	suite.Equal(int64(20000), updated.Odometer)
}

// TestUpdateGuardedInvalidVersionToken tests that a non-positive token is
// rejected as bad input, not treated as a conflict
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedInvalidVersionToken() {
	vehicle := suite.createVehicle(suite.branch.ID, "UPD-004")

	for _, token := range []int64{0, -1} {
		updated, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(token), func(v *models.Vehicle) error {
			v.Odometer = 77000
			return nil
		})

		suite.ErrorIs(err, apperrors.ErrInvalidVersion)
		suite.Nil(updated)
	}

	stored, err := suite.repo.GetByID(suite.tctx, vehicle.ID)
	suite.NoError(err)
	suite.Equal(int64(1), stored.Version)
}

// TestUpdateGuardedForeignBranchReportsNotFound tests that the guard never
// reveals a foreign record's existence, even via the conflict path
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedForeignBranchReportsNotFound() {
	foreign := suite.createVehicle(suite.otherBranch.ID, "UPD-005")

	updated, err := suite.repo.UpdateGuarded(suite.tctx, foreign.ID, int64Ptr(1), func(v *models.Vehicle) error {
		v.Odometer = 1
		return nil
	})

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(updated)
}

// TestUpdateGuardedMutateErrorAborts tests that a failed mutation writes
// nothing
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedMutateErrorAborts() {
	vehicle := suite.createVehicle(suite.branch.ID, "UPD-006")

	updated, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(1), func(v *models.Vehicle) error {
		return apperrors.NewValidationError("odometer", "cannot decrease")
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Nil(updated)

	stored, err := suite.repo.GetByID(suite.tctx, vehicle.ID)
	suite.NoError(err)
	suite.Equal(int64(1), stored.Version)
}

// TestUpdateGuardedRacingWritersSingleWinner tests that of N concurrent
// writers holding the same token, exactly one commits; the conditional write
// is the only synchronization point
func (suite *VehicleRepositoryTestSuite) TestUpdateGuardedRacingWritersSingleWinner() {
	vehicle := suite.createVehicle(suite.branch.ID, "RACE-001")

	const writers = 8
	results := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(odometer int64) {
			defer wg.Done()
			_, err := suite.repo.UpdateGuarded(suite.tctx, vehicle.ID, int64Ptr(1), func(v *models.Vehicle) error {
				v.Odometer = odometer
				return nil
			})
			results <- err
		}(int64(1000 * (i + 1)))
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case apperrors.IsConflict(err):
			conflicts++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, wins)
	suite.Equal(writers-1, conflicts)

	stored, err := suite.repo.GetByID(suite.tctx, vehicle.ID)
	suite.NoError(err)
	suite.Equal(int64(2), stored.Version)
}

// TestDelete tests deleting within the caller's branch
func (suite *VehicleRepositoryTestSuite) TestDelete() {
	vehicle := suite.createVehicle(suite.branch.ID, "DEL-001")

	err := suite.repo.Delete(suite.tctx, vehicle.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByID(suite.tctx, vehicle.ID)
	suite.True(apperrors.IsNotFound(err))
}

// TestDeleteForeignBranchReportsNotFound tests that deleting a foreign record
// fails as not found and leaves it untouched
func (suite *VehicleRepositoryTestSuite) TestDeleteForeignBranchReportsNotFound() {
	foreign := suite.createVehicle(suite.otherBranch.ID, "DEL-002")

	err := suite.repo.Delete(suite.tctx, foreign.ID)

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))

	still, err := suite.repo.GetByID(suite.otherTctx, foreign.ID)
	suite.NoError(err)
	suite.Equal(foreign.ID, still.ID)
}

// TestGetByRegistration tests the scoped registration lookup
func (suite *VehicleRepositoryTestSuite) TestGetByRegistration() {
	suite.createVehicle(suite.branch.ID, "REG-7741")

	found, err := suite.repo.GetByRegistration(suite.tctx, "REG-7741")

	suite.NoError(err)
	suite.Equal("REG-7741", found.Registration)
}

// TestGetByRegistrationScopedPerBranch tests that the same registration may
// exist in two branches without colliding
func (suite *VehicleRepositoryTestSuite) TestGetByRegistrationScopedPerBranch() {
	mine := suite.createVehicle(suite.branch.ID, "REG-5520")
	theirs := suite.createVehicle(suite.otherBranch.ID, "REG-5520")

	found, err := suite.repo.GetByRegistration(suite.tctx, "REG-5520")
	suite.NoError(err)
	suite.Equal(mine.ID, found.ID)

	found, err = suite.repo.GetByRegistration(suite.otherTctx, "REG-5520")
	suite.NoError(err)
	suite.Equal(theirs.ID, found.ID)
}

// TestListInspectionsByVehicle tests the child listing with branch scoping
func (suite *VehicleRepositoryTestSuite) TestListInspectionsByVehicle() {
	vehicle := suite.createVehicle(suite.branch.ID, "INS-001")
	otherVehicle := suite.createVehicle(suite.branch.ID, "INS-002")

	factory := testutils.NewVehicleInspectionFactory()
	for i := 0; i < 2; i++ {
		suite.NoError(suite.baseTestSuite.DB.Create(factory.Create(suite.branch.ID, vehicle.ID)).Error)
	}
	suite.NoError(suite.baseTestSuite.DB.Create(factory.Create(suite.branch.ID, otherVehicle.ID)).Error)

	spec := query.Build(suite.inspectionRepo.Whitelist(), query.Params{})
	inspections, total, err := suite.inspectionRepo.ListByVehicle(suite.tctx, spec, vehicle.ID)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(inspections, 2)
	for _, ins := range inspections {
		suite.Equal(vehicle.ID, ins.VehicleID)
	}
}

// TestRunVehicleRepositoryTestSuite runs the test suite
func TestRunVehicleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRepositoryTestSuite))
}
