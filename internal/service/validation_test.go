package service_test

import (
	"context"
	"testing"
	"time"

	"employee-roster/internal/clock"
	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/logger"
	"employee-roster/internal/repository"
	"employee-roster/internal/seed"
	"employee-roster/internal/service"
	"employee-roster/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var validationNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// ValidationTestSuite defines the test suite for EmployeeService.Validate
type ValidationTestSuite struct {
	suite.Suite
	svc     *service.EmployeeService
	factory *testutils.EmployeeFactory
}

// SetupTest creates an empty service on a fixed clock
func (suite *ValidationTestSuite) SetupTest() {
	suite.factory = testutils.NewEmployeeFactory()
	suite.svc = service.NewEmployeeService(
		repository.NewMemoryStore(),
		service.NewValidator(),
		clock.NewManualClock(validationNow),
		service.WithSeed(seed.None{}),
		service.WithLogger(logger.Discard()),
	)
	suite.svc.Init(context.Background())
}

func (suite *ValidationTestSuite) TestValidCandidate() {
	result := suite.svc.Validate(suite.factory.Input(), false)

	assert.True(suite.T(), result.IsValid)
	assert.Empty(suite.T(), result.Errors)
	assert.NoError(suite.T(), result.Err())
}

func (suite *ValidationTestSuite) TestFieldRules() {
	testCases := []struct {
		name   string
		mutate func(e *models.Employee)
		field  string
		key    string
	}{
		{"empty first name", func(e *models.Employee) { e.FirstName = "" }, "firstName", apperrors.KeyRequired},
		{"blank last name", func(e *models.Employee) { e.LastName = "   " }, "lastName", apperrors.KeyRequired},
		{"missing email", func(e *models.Employee) { e.Email = "" }, "email", apperrors.KeyRequired},
		{"malformed email", func(e *models.Employee) { e.Email = "not-an-email" }, "email", apperrors.KeyInvalidEmail},
		{"email without tld", func(e *models.Employee) { e.Email = "a@b" }, "email", apperrors.KeyInvalidEmail},
		{"missing phone", func(e *models.Employee) { e.Phone = "" }, "phone", apperrors.KeyRequired},
		{"letters in phone", func(e *models.Employee) { e.Phone = "555-CALL-NOW" }, "phone", apperrors.KeyInvalidPhone},
		{"unparseable birth date", func(e *models.Employee) { e.DateOfBirth = "15/01/1990" }, "dateOfBirth", apperrors.KeyInvalidDate},
		{"unparseable employment date", func(e *models.Employee) { e.DateOfEmployment = "yesterday" }, "dateOfEmployment", apperrors.KeyInvalidDate},
		{"missing department", func(e *models.Employee) { e.Department = "" }, "department", apperrors.KeyRequired},
		{"unknown department", func(e *models.Employee) { e.Department = "Sales" }, "department", apperrors.KeyInvalidDepartment},
		{"unknown position", func(e *models.Employee) { e.Position = "CEO" }, "position", apperrors.KeyInvalidPosition},
		{"future birth date", func(e *models.Employee) { e.DateOfBirth, e.DateOfEmployment = "2030-01-01", "2031-01-01" }, "dateOfBirth", apperrors.KeyFutureDate},
		{"underage", func(e *models.Employee) { e.DateOfBirth = "2010-01-01" }, "dateOfBirth", apperrors.KeyUnderage},
		{"employment before birth", func(e *models.Employee) { e.DateOfEmployment = "1980-01-01" }, "dateOfEmployment", apperrors.KeyEmploymentBeforeBirth},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			candidate := suite.factory.Input()
			tc.mutate(&candidate)

			result := suite.svc.Validate(candidate, false)

			assert.False(suite.T(), result.IsValid)
			assert.Equal(suite.T(), tc.key, result.Errors[tc.field])
			assert.Len(suite.T(), result.Errors, 1)
			assert.True(suite.T(), apperrors.IsValidation(result.Err()))
		})
	}
}

func (suite *ValidationTestSuite) TestAllFieldsReported() {
	result := suite.svc.Validate(models.Employee{}, false)

	assert.False(suite.T(), result.IsValid)
	for _, field := range []string{"firstName", "lastName", "email", "phone", "dateOfBirth", "dateOfEmployment", "department", "position"} {
		assert.Equal(suite.T(), apperrors.KeyRequired, result.Errors[field], field)
	}
}

func (suite *ValidationTestSuite) TestEighteenthBirthdayIsAccepted() {
	candidate := suite.factory.Input()
	candidate.DateOfBirth = "2006-06-01"
	candidate.DateOfEmployment = "2024-06-01"

	assert.True(suite.T(), suite.svc.Validate(candidate, false).IsValid)
}

func (suite *ValidationTestSuite) TestDuplicateEmail() {
	existing, err := suite.svc.Add(context.Background(), suite.factory.WithEmail("taken@example.com"))
	require.NoError(suite.T(), err)

	result := suite.svc.Validate(suite.factory.WithEmail("TAKEN@example.com"), false)
	assert.False(suite.T(), result.IsValid)
	assert.Equal(suite.T(), apperrors.KeyEmailExists, result.Errors["email"])

	// an update keeping its own email is fine
	self := existing
	assert.True(suite.T(), suite.svc.Validate(self, true).IsValid)

	// but not when checked as a new record
	assert.Equal(suite.T(), apperrors.KeyEmailExists, suite.svc.Validate(self, false).Errors["email"])
}

func (suite *ValidationTestSuite) TestUpdateCannotTakeAnotherEmail() {
	first, err := suite.svc.Add(context.Background(), suite.factory.WithEmail("first@example.com"))
	require.NoError(suite.T(), err)
	second, err := suite.svc.Add(context.Background(), suite.factory.WithEmail("second@example.com"))
	require.NoError(suite.T(), err)

	second.Email = first.Email
	result := suite.svc.Validate(second, true)

	assert.Equal(suite.T(), apperrors.KeyEmailExists, result.Errors["email"])
}

// TestValidationTestSuite runs the test suite
func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}
