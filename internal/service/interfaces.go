package service

import (
	"context"

	"employee-roster/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmployeeServiceInterface defines the interface for the employee service
type EmployeeServiceInterface interface {
	Init(ctx context.Context)
	LoadAll() []models.Employee
	GetByID(id string) (models.Employee, bool)
	Add(ctx context.Context, data models.Employee) (models.Employee, error)
	Update(ctx context.Context, id string, req *UpdateEmployeeRequest) (models.Employee, error)
	Delete(ctx context.Context, id string) (models.Employee, error)
	Validate(candidate models.Employee, isUpdate bool) ValidationResult
	Statistics() Statistics
	ExportAll() ExportBlob
	ImportAll(ctx context.Context, raw []byte) (int, error)
	ClearAll(ctx context.Context) error
}

var _ EmployeeServiceInterface = (*EmployeeService)(nil)
