package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "employee"}
		assert.Equal(t, "employee not found", err.Error())
	})

	t.Run("Error message with id", func(t *testing.T) {
		err := NewEmployeeNotFoundError("abc")
		assert.Equal(t, `employee "abc" not found`, err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(NewEmployeeNotFoundError("abc"), ErrEmployeeNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "employee"}
		err2 := &NotFoundError{Entity: "team"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEmployeeNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("update: %w", NewEmployeeNotFoundError("x"))))
		assert.False(t, IsNotFound(ErrStorageUnavailable))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message lists fields in order", func(t *testing.T) {
		err := NewValidationError(map[string]string{
			"lastName":  KeyRequired,
			"email":     KeyInvalidEmail,
			"firstName": KeyRequired,
		})
		assert.Equal(t, "validation error: email: validation.invalidEmail, firstName: validation.required, lastName: validation.required", err.Error())
	})

	t.Run("Empty fields", func(t *testing.T) {
		assert.Equal(t, "validation error", (&ValidationError{}).Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError(nil)))
		assert.False(t, IsValidation(ErrEmployeeNotFound))
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := NewPersistenceError("write", "emp_data", cause)

	assert.Equal(t, `storage write "emp_data": quota exceeded`, err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsPersistence(fmt.Errorf("save: %w", err)))
	assert.False(t, IsPersistence(cause))

	var persistence *PersistenceError
	if assert.True(t, errors.As(err, &persistence)) {
		assert.Equal(t, "emp_data", persistence.StorageKey)
		assert.Equal(t, KeySavingEmployee, persistence.Key())
	}
}

func TestImportFormatError(t *testing.T) {
	assert.Equal(t, "invalid import data format", (&ImportFormatError{}).Error())
	assert.Equal(t, "invalid import data format: employees must be a list", NewImportFormatError("employees must be a list").Error())
	assert.True(t, IsImportFormat(NewImportFormatError("")))
	assert.False(t, IsImportFormat(ErrEmployeeNotFound))
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("STORAGE_DRIVER is required")
	assert.Equal(t, "STORAGE_DRIVER is required", err.Error())
	assert.True(t, IsConfiguration(err))
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, "", KeyOf(nil))
	assert.Equal(t, KeyEmployeeNotFound, KeyOf(NewEmployeeNotFoundError("x")))
	assert.Equal(t, KeyValidationFailed, KeyOf(NewValidationError(nil)))
	assert.Equal(t, KeySavingEmployee, KeyOf(fmt.Errorf("add: %w", NewPersistenceError("write", "emp_data", ErrStorageUnavailable))))
	assert.Equal(t, KeyInvalidImport, KeyOf(NewImportFormatError("")))
	assert.Equal(t, KeyGeneric, KeyOf(errors.New("boom")))
}
