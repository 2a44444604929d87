package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Key returns the stable message key for the error
func (e *NotFoundError) Key() string {
	return KeyEmployeeNotFound
}

// ValidationError carries field-keyed message keys. It is returned as data by
// the service and only wrapped as an error at the store boundary.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Key returns the stable message key for the error
func (e *ValidationError) Key() string {
	return KeyValidationFailed
}

// PersistenceError represents a storage read or write failure
type PersistenceError struct {
	Op         string
	StorageKey string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.StorageKey, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Key returns the stable message key for the error
func (e *PersistenceError) Key() string {
	return KeySavingEmployee
}

// ImportFormatError represents a malformed bulk-import payload
type ImportFormatError struct {
	Reason string
}

func (e *ImportFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid import data format: %s", e.Reason)
	}
	return "invalid import data format"
}

// Key returns the stable message key for the error
func (e *ImportFormatError) Key() string {
	return KeyInvalidImport
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
)

// Business Logic Errors
var (
	ErrStorageUnavailable  = errors.New("storage is unavailable")
	ErrUnknownStorage      = errors.New("unknown storage driver")
	ErrInvalidPage         = errors.New("page out of range")
	ErrInvalidItemsPerPage = errors.New("items per page must be positive")
	ErrInvalidSortField    = errors.New("unknown sort field")
	ErrInvalidViewMode     = errors.New("unknown view mode")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsImportFormat checks if an error is an ImportFormatError
func IsImportFormat(err error) bool {
	var importErr *ImportFormatError
	return errors.As(err, &importErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// KeyOf returns the stable message key of err, falling back to the generic
// error key for errors without one.
func KeyOf(err error) string {
	if err == nil {
		return ""
	}
	var keyed interface{ Key() string }
	if errors.As(err, &keyed) {
		return keyed.Key()
	}
	return KeyGeneric
}

// NewEmployeeNotFoundError creates a NotFoundError for an employee id
func NewEmployeeNotFoundError(id string) error {
	return &NotFoundError{Entity: "employee", ID: id}
}

// NewValidationError creates a ValidationError from a field map
func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// NewPersistenceError wraps a storage failure
func NewPersistenceError(op, key string, err error) error {
	return &PersistenceError{Op: op, StorageKey: key, Err: err}
}

// NewImportFormatError creates a new ImportFormatError
func NewImportFormatError(reason string) error {
	return &ImportFormatError{Reason: reason}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
