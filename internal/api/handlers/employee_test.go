package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"employee-roster/internal/api/handlers"
	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/service"
	"employee-roster/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// EmployeeHandlerTestSuite defines the test suite for EmployeeHandler
type EmployeeHandlerTestSuite struct {
	handlerSuite
	handler *handlers.EmployeeHandler
}

// SetupTest sets up the test suite
func (suite *EmployeeHandlerTestSuite) SetupTest() {
	suite.setup(12)
	suite.handler = handlers.NewEmployeeHandler(suite.store, suite.service, suite.localizer())

	r := suite.router()
	r.GET("/employees", suite.handler.ListEmployees)
	r.POST("/employees", suite.handler.CreateEmployee)
	r.DELETE("/employees", suite.handler.ClearEmployees)
	r.GET("/employees/:id", suite.handler.GetEmployee)
	r.PUT("/employees/:id", suite.handler.UpdateEmployee)
	r.DELETE("/employees/:id", suite.handler.DeleteEmployee)
	r.GET("/statistics", suite.handler.Statistics)
	r.GET("/export", suite.handler.Export)
	r.POST("/import", suite.handler.Import)
}

func (suite *EmployeeHandlerTestSuite) TestListEmployeesFirstPage() {
	rec := suite.http.MakeRequest(http.MethodGet, "/employees", nil)

	var response handlers.EmployeePageResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Len(suite.T(), response.Employees, 9)
	assert.Equal(suite.T(), 1, response.CurrentPage)
	assert.Equal(suite.T(), 9, response.ItemsPerPage)
	assert.Equal(suite.T(), 2, response.TotalPages)
	assert.Equal(suite.T(), 12, response.Total)
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployeeSelectsIt() {
	target := suite.service.LoadAll()[3]

	rec := suite.http.MakeRequest(http.MethodGet, "/employees/"+target.ID, nil)

	var response models.Employee
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Equal(suite.T(), target.ID, response.ID)
	selected := suite.store.GetState().SelectedEmployee
	require.NotNil(suite.T(), selected)
	assert.Equal(suite.T(), target.ID, selected.ID)
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployeeNotFound() {
	rec := suite.http.MakeRequest(http.MethodGet, "/employees/missing", nil)

	response := testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, apperrors.KeyEmployeeNotFound)
	assert.Equal(suite.T(), "Employee not found", response["message"])
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee() {
	input := suite.factory.Input()

	rec := suite.http.MakeRequest(http.MethodPost, "/employees", input)

	var response handlers.MutationResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &response)
	require.NotNil(suite.T(), response.Employee)
	assert.NotEmpty(suite.T(), response.Employee.ID)
	assert.Equal(suite.T(), input.Email, response.Employee.Email)
	assert.Equal(suite.T(), "Employee added successfully", response.Message)
	assert.Len(suite.T(), suite.store.GetState().Employees, 13)
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployeeValidationFailed() {
	input := suite.factory.Input()
	input.Email = "not-an-email"
	input.FirstName = ""

	rec := suite.http.MakeRequest(http.MethodPost, "/employees", input)

	response := testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, apperrors.KeyValidationFailed)
	fields, ok := response["errors"].(map[string]interface{})
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.KeyInvalidEmail, fields["email"])
	assert.Equal(suite.T(), apperrors.KeyRequired, fields["firstName"])
	assert.Len(suite.T(), suite.store.GetState().Employees, 12)
	assert.Empty(suite.T(), suite.store.GetState().Error)
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployeeUnderageMessageInTurkish() {
	input := suite.factory.Input()
	input.DateOfBirth = "2010-01-01"

	rec := suite.http.MakeRequestWithHeaders(http.MethodPost, "/employees", input, map[string]string{
		"Accept-Language": "tr-TR,tr;q=0.9",
	})

	response := testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, apperrors.KeyValidationFailed)
	messages, ok := response["messages"].(map[string]interface{})
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Çalışan en az 18 yaşında olmalıdır", messages["dateOfBirth"])
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployeeMalformedBody() {
	rec := suite.http.MakeRequest(http.MethodPost, "/employees", []byte(`{"firstName":`))

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, apperrors.KeyGeneric)
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee() {
	target := suite.service.LoadAll()[0]

	rec := suite.http.MakeRequest(http.MethodPut, "/employees/"+target.ID, map[string]string{
		"position": "Senior",
	})

	var response handlers.MutationResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	require.NotNil(suite.T(), response.Employee)
	assert.Equal(suite.T(), models.PositionSenior, response.Employee.Position)
	assert.Equal(suite.T(), target.Email, response.Employee.Email)
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployeeDuplicateEmail() {
	all := suite.service.LoadAll()

	rec := suite.http.MakeRequest(http.MethodPut, "/employees/"+all[0].ID, map[string]string{
		"email": strings.ToUpper(all[1].Email),
	})

	response := testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, apperrors.KeyValidationFailed)
	fields := response["errors"].(map[string]interface{})
	assert.Equal(suite.T(), apperrors.KeyEmailExists, fields["email"])
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployeeNotFound() {
	rec := suite.http.MakeRequest(http.MethodPut, "/employees/missing", map[string]string{"firstName": "X"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, apperrors.KeyEmployeeNotFound)
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee() {
	target := suite.service.LoadAll()[5]

	rec := suite.http.MakeRequest(http.MethodDelete, "/employees/"+target.ID, nil)

	var response handlers.MutationResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Equal(suite.T(), "Employee deleted successfully", response.Message)
	_, found := suite.service.GetByID(target.ID)
	assert.False(suite.T(), found)
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployeeNotFound() {
	rec := suite.http.MakeRequest(http.MethodDelete, "/employees/missing", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, apperrors.KeyEmployeeNotFound)
	assert.Equal(suite.T(), apperrors.KeyEmployeeNotFound, suite.store.GetState().Error)
}

func (suite *EmployeeHandlerTestSuite) TestClearEmployees() {
	rec := suite.http.MakeRequest(http.MethodDelete, "/employees", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Empty(suite.T(), suite.store.GetState().Employees)
	_, ok, err := suite.repo.GetItem(suite.ctx, models.StorageKeyEmployees)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)
}

func (suite *EmployeeHandlerTestSuite) TestStatistics() {
	rec := suite.http.MakeRequest(http.MethodGet, "/statistics", nil)

	var response service.Statistics
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Equal(suite.T(), 12, response.Total)
}

func (suite *EmployeeHandlerTestSuite) TestExportSetsAttachmentName() {
	rec := suite.http.MakeRequest(http.MethodGet, "/export", nil)

	var blob service.ExportBlob
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &blob)
	assert.Len(suite.T(), blob.Employees, 12)
	assert.Equal(suite.T(), service.ExportVersion, blob.Version)
	assert.Equal(suite.T(), `attachment; filename="employees-2024-06-15.json"`, rec.Header().Get("Content-Disposition"))
}

func (suite *EmployeeHandlerTestSuite) TestImportReplacesRoster() {
	blob := service.ExportBlob{
		Employees: suite.factory.Many(3),
		Version:   service.ExportVersion,
	}
	body, err := json.Marshal(blob)
	require.NoError(suite.T(), err)

	rec := suite.http.MakeRequest(http.MethodPost, "/import", body)

	var response handlers.MutationResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Equal(suite.T(), 3, response.Count)
	assert.Len(suite.T(), suite.store.GetState().Employees, 3)
}

func (suite *EmployeeHandlerTestSuite) TestImportMalformedKeepsRoster() {
	rec := suite.http.MakeRequest(http.MethodPost, "/import", []byte(`{"employees":"nope"}`))

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, apperrors.KeyInvalidImport)
	assert.Len(suite.T(), suite.store.GetState().Employees, 12)
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
