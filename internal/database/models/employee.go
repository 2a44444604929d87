package models

import "time"

// Department represents the department an employee belongs to
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Position represents the seniority of an employee
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Departments lists every valid department in display order
var Departments = []Department{DepartmentAnalytics, DepartmentTech}

// Positions lists every valid position in display order
var Positions = []Position{PositionJunior, PositionMedior, PositionSenior}

// IsValid checks if the Department is valid
func (d Department) IsValid() bool {
	switch d {
	case DepartmentAnalytics, DepartmentTech:
		return true
	}
	return false
}

// IsValid checks if the Position is valid
func (p Position) IsValid() bool {
	switch p {
	case PositionJunior, PositionMedior, PositionSenior:
		return true
	}
	return false
}

// DateLayout is the layout of DateOfBirth and DateOfEmployment. ISO dates
// sort chronologically when compared as strings.
const DateLayout = "2006-01-02"

// Employee is the persisted employee record. JSON names match the stored
// blob; validate tags use the rules registered by service.NewValidator.
type Employee struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName" validate:"notblank"`
	LastName         string     `json:"lastName" validate:"notblank"`
	Email            string     `json:"email" validate:"notblank,simpleemail"`
	Phone            string     `json:"phone" validate:"notblank,phone"`
	DateOfBirth      string     `json:"dateOfBirth" validate:"notblank,datetime=2006-01-02"`
	DateOfEmployment string     `json:"dateOfEmployment" validate:"notblank,datetime=2006-01-02"`
	Department       Department `json:"department" validate:"notblank,oneof=Analytics Tech"`
	Position         Position   `json:"position" validate:"notblank,oneof=Junior Medior Senior"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// FullName returns "first last"
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Clone returns a copy that shares no pointers with e
func (e Employee) Clone() Employee {
	out := e
	if e.CreatedAt != nil {
		t := *e.CreatedAt
		out.CreatedAt = &t
	}
	if e.UpdatedAt != nil {
		t := *e.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// CloneEmployees copies a slice of employees element by element
func CloneEmployees(in []Employee) []Employee {
	if in == nil {
		return nil
	}
	out := make([]Employee, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
