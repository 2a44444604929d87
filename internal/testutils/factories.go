package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"employee-roster/internal/database/models"

	"github.com/google/uuid"
)

var employeeSeq atomic.Int64

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Input creates a valid, id-less candidate with a unique email
func (f *EmployeeFactory) Input() models.Employee {
	n := employeeSeq.Add(1)
	return models.Employee{
		FirstName:        "Test",
		LastName:         fmt.Sprintf("User%d", n),
		Email:            fmt.Sprintf("test.user%d@example.com", n),
		Phone:            "+90 555 111 22 33",
		DateOfBirth:      "1990-01-01",
		DateOfEmployment: "2023-01-01",
		Department:       models.DepartmentTech,
		Position:         models.PositionJunior,
	}
}

// Create creates a stored-looking Employee with id and timestamps
func (f *EmployeeFactory) Create() models.Employee {
	e := f.Input()
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = &now
	e.UpdatedAt = &now
	return e
}

// WithEmail creates a candidate with a custom email
func (f *EmployeeFactory) WithEmail(email string) models.Employee {
	e := f.Input()
	e.Email = email
	return e
}

// WithName creates a candidate with a custom first and last name
func (f *EmployeeFactory) WithName(first, last string) models.Employee {
	e := f.Input()
	e.FirstName = first
	e.LastName = last
	return e
}

// Many creates n stored employees whose first names sort in creation order
func (f *EmployeeFactory) Many(n int) []models.Employee {
	out := make([]models.Employee, n)
	for i := range out {
		e := f.Create()
		e.ID = fmt.Sprintf("emp_%02d", i)
		e.FirstName = fmt.Sprintf("Employee%02d", i)
		e.Email = fmt.Sprintf("emp%02d@test.com", i)
		out[i] = e
	}
	return out
}

// FactorySet groups all factories
type FactorySet struct {
	Employee *EmployeeFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee: NewEmployeeFactory(),
	}
}
