package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"employee-roster/internal/clock"
	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/logger"
	"employee-roster/internal/mocks"
	"employee-roster/internal/repository"
	"employee-roster/internal/seed"
	"employee-roster/internal/service"
	"employee-roster/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *repository.MemoryStore
	clock   *clock.ManualClock
	factory *testutils.EmployeeFactory
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = repository.NewMemoryStore()
	suite.clock = clock.NewManualClock(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	suite.factory = testutils.NewEmployeeFactory()
}

func (suite *EmployeeServiceTestSuite) newService(repo repository.KeyValueStoreInterface, provider seed.Provider) *service.EmployeeService {
	svc := service.NewEmployeeService(
		repo,
		service.NewValidator(),
		suite.clock,
		service.WithSeed(provider),
		service.WithLogger(logger.Discard()),
	)
	svc.Init(suite.ctx)
	return svc
}

func (suite *EmployeeServiceTestSuite) storedEmployees() []models.Employee {
	raw, ok, err := suite.store.GetItem(suite.ctx, models.StorageKeyEmployees)
	require.NoError(suite.T(), err)
	require.True(suite.T(), ok)

	var out []models.Employee
	require.NoError(suite.T(), json.Unmarshal([]byte(raw), &out))
	return out
}

func (suite *EmployeeServiceTestSuite) TestInitSeedsWhenStorageEmpty() {
	svc := suite.newService(suite.store, seed.Demo{})

	employees := svc.LoadAll()
	require.Len(suite.T(), employees, 5)
	for _, e := range employees {
		assert.NotEmpty(suite.T(), e.ID)
		assert.NotNil(suite.T(), e.CreatedAt)
	}
	assert.Equal(suite.T(), employees, suite.storedEmployees())
}

func (suite *EmployeeServiceTestSuite) TestInitLoadsStoredCollection() {
	first := suite.newService(suite.store, seed.Demo{})
	seeded := first.LoadAll()

	second := suite.newService(suite.store, seed.Demo{})

	assert.Equal(suite.T(), seeded, second.LoadAll())
}

func (suite *EmployeeServiceTestSuite) TestInitKeepsStoredEmptyCollection() {
	require.NoError(suite.T(), suite.store.SetItem(suite.ctx, models.StorageKeyEmployees, "[]"))

	svc := suite.newService(suite.store, seed.Demo{})

	assert.Empty(suite.T(), svc.LoadAll())
}

func (suite *EmployeeServiceTestSuite) TestInitCorruptBlobDegradesToEmpty() {
	require.NoError(suite.T(), suite.store.SetItem(suite.ctx, models.StorageKeyEmployees, "{not json"))

	svc := suite.newService(suite.store, seed.Demo{})

	assert.Empty(suite.T(), svc.LoadAll())
	assert.NotNil(suite.T(), svc.LoadAll())
}

func (suite *EmployeeServiceTestSuite) TestInitReadFailureDegradesToEmpty() {
	ctrl := gomock.NewController(suite.T())
	repo := mocks.NewMockKeyValueStoreInterface(ctrl)
	repo.EXPECT().
		GetItem(gomock.Any(), models.StorageKeyEmployees).
		Return("", false, errors.New("disk on fire")).
		Times(1)

	svc := suite.newService(repo, seed.Demo{})

	assert.Empty(suite.T(), svc.LoadAll())
}

func (suite *EmployeeServiceTestSuite) TestAddAssignsIdentityAndPersists() {
	svc := suite.newService(suite.store, seed.None{})
	input := suite.factory.Input()

	created, err := svc.Add(suite.ctx, input)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), created.ID)
	require.NotNil(suite.T(), created.CreatedAt)
	assert.Equal(suite.T(), suite.clock.Now(), *created.CreatedAt)
	assert.Equal(suite.T(), input.Email, created.Email)

	got, ok := svc.GetByID(created.ID)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), created, got)
	assert.Equal(suite.T(), []models.Employee{created}, suite.storedEmployees())
}

func (suite *EmployeeServiceTestSuite) TestAddKeepsStateWhenSaveFails() {
	ctrl := gomock.NewController(suite.T())
	repo := mocks.NewMockKeyValueStoreInterface(ctrl)
	repo.EXPECT().GetItem(gomock.Any(), models.StorageKeyEmployees).Return("[]", true, nil)
	repo.EXPECT().
		SetItem(gomock.Any(), models.StorageKeyEmployees, gomock.Any()).
		Return(errors.New("quota exceeded")).
		Times(1)

	svc := suite.newService(repo, seed.None{})
	created, err := svc.Add(suite.ctx, suite.factory.Input())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.Employee{created}, svc.LoadAll())
}

func (suite *EmployeeServiceTestSuite) TestLoadAllReturnsCopy() {
	svc := suite.newService(suite.store, seed.None{})
	created, err := svc.Add(suite.ctx, suite.factory.Input())
	require.NoError(suite.T(), err)

	employees := svc.LoadAll()
	employees[0].FirstName = "Mutated"

	got, _ := svc.GetByID(created.ID)
	assert.Equal(suite.T(), created.FirstName, got.FirstName)
}

func (suite *EmployeeServiceTestSuite) TestUpdateMergesFields() {
	svc := suite.newService(suite.store, seed.None{})
	created, err := svc.Add(suite.ctx, suite.factory.Input())
	require.NoError(suite.T(), err)

	suite.clock.Advance(time.Hour)
	name := "Renamed"
	senior := models.PositionSenior
	updated, err := svc.Update(suite.ctx, created.ID, &service.UpdateEmployeeRequest{
		FirstName: &name,
		Position:  &senior,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ID, updated.ID)
	assert.Equal(suite.T(), "Renamed", updated.FirstName)
	assert.Equal(suite.T(), models.PositionSenior, updated.Position)
	assert.Equal(suite.T(), created.LastName, updated.LastName)
	assert.Equal(suite.T(), *created.CreatedAt, *updated.CreatedAt)
	assert.Equal(suite.T(), suite.clock.Now(), *updated.UpdatedAt)
	assert.Equal(suite.T(), []models.Employee{updated}, suite.storedEmployees())
}

func (suite *EmployeeServiceTestSuite) TestUpdateNotFound() {
	svc := suite.newService(suite.store, seed.None{})

	_, err := svc.Update(suite.ctx, "missing", &service.UpdateEmployeeRequest{})

	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

func (suite *EmployeeServiceTestSuite) TestDelete() {
	svc := suite.newService(suite.store, seed.None{})
	keep, err := svc.Add(suite.ctx, suite.factory.Input())
	require.NoError(suite.T(), err)
	drop, err := svc.Add(suite.ctx, suite.factory.Input())
	require.NoError(suite.T(), err)

	removed, err := svc.Delete(suite.ctx, drop.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), drop.ID, removed.ID)
	assert.Equal(suite.T(), []models.Employee{keep}, svc.LoadAll())
	assert.Equal(suite.T(), []models.Employee{keep}, suite.storedEmployees())

	_, err = svc.Delete(suite.ctx, drop.ID)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *EmployeeServiceTestSuite) TestStatistics() {
	svc := suite.newService(suite.store, seed.None{})

	empty := svc.Statistics()
	assert.Equal(suite.T(), 0, empty.Total)
	assert.Equal(suite.T(), 0, empty.AverageAgeYears)

	a := suite.factory.Input()
	a.DateOfBirth, a.Department, a.Position = "1990-06-15", models.DepartmentTech, models.PositionJunior
	b := suite.factory.Input()
	b.DateOfBirth, b.Department, b.Position = "1980-06-15", models.DepartmentAnalytics, models.PositionJunior
	for _, e := range []models.Employee{a, b} {
		_, err := svc.Add(suite.ctx, e)
		require.NoError(suite.T(), err)
	}

	stats := svc.Statistics()
	assert.Equal(suite.T(), 2, stats.Total)
	assert.Equal(suite.T(), 1, stats.ByDepartment[models.DepartmentTech])
	assert.Equal(suite.T(), 1, stats.ByDepartment[models.DepartmentAnalytics])
	assert.Equal(suite.T(), 2, stats.ByPosition[models.PositionJunior])
	assert.Equal(suite.T(), 39, stats.AverageAgeYears)
}

func (suite *EmployeeServiceTestSuite) TestExportImportRoundTrip() {
	source := suite.newService(suite.store, seed.Demo{})
	blob := source.ExportAll()
	assert.Equal(suite.T(), service.ExportVersion, blob.Version)
	assert.Equal(suite.T(), suite.clock.Now(), blob.ExportedAt)

	raw, err := json.Marshal(blob)
	require.NoError(suite.T(), err)

	target := suite.newService(repository.NewMemoryStore(), seed.None{})
	count, err := target.ImportAll(suite.ctx, raw)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, count)
	assert.Equal(suite.T(), source.LoadAll(), target.LoadAll())
}

func (suite *EmployeeServiceTestSuite) TestImportRejectsMalformedBlob() {
	svc := suite.newService(suite.store, seed.Demo{})
	before := svc.LoadAll()

	for _, raw := range []string{
		`not json`,
		`[]`,
		`{"version":"1.0"}`,
		`{"employees":{"id":"x"}}`,
		`{"employees":null}`,
		`{"employees":[{"firstName":42}]}`,
	} {
		_, err := svc.ImportAll(suite.ctx, []byte(raw))
		assert.True(suite.T(), apperrors.IsImportFormat(err), raw)
	}

	assert.Equal(suite.T(), before, svc.LoadAll())
	assert.Equal(suite.T(), before, suite.storedEmployees())
}

func (suite *EmployeeServiceTestSuite) TestImportAssignsMissingIDs() {
	svc := suite.newService(suite.store, seed.None{})

	count, err := svc.ImportAll(suite.ctx, []byte(`{"employees":[{"id":"keep-me","firstName":"A"},{"firstName":"B"}]}`))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, count)
	employees := svc.LoadAll()
	assert.Equal(suite.T(), "keep-me", employees[0].ID)
	assert.NotEmpty(suite.T(), employees[1].ID)
}

func (suite *EmployeeServiceTestSuite) TestClearAllReseedsOnNextInit() {
	svc := suite.newService(suite.store, seed.Demo{})

	require.NoError(suite.T(), svc.ClearAll(suite.ctx))
	assert.Empty(suite.T(), svc.LoadAll())
	_, ok, err := suite.store.GetItem(suite.ctx, models.StorageKeyEmployees)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)

	reloaded := suite.newService(suite.store, seed.Demo{})
	assert.Len(suite.T(), reloaded.LoadAll(), 5)
}

func (suite *EmployeeServiceTestSuite) TestClearAllReportsStorageFailure() {
	ctrl := gomock.NewController(suite.T())
	repo := mocks.NewMockKeyValueStoreInterface(ctrl)
	repo.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return("[]", true, nil)
	repo.EXPECT().RemoveItem(gomock.Any(), models.StorageKeyEmployees).Return(errors.New("locked"))

	svc := suite.newService(repo, seed.None{})
	err := svc.ClearAll(suite.ctx)

	assert.True(suite.T(), apperrors.IsPersistence(err))
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
