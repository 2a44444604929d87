package seed

import (
	"fmt"
	"os"

	"employee-roster/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Provider supplies the initial collection used when no persisted data exists
type Provider interface {
	Employees() ([]models.Employee, error)
}

// Demo is the built-in demo collection
type Demo struct{}

// Employees returns a fresh copy of the demo records, without ids
func (Demo) Employees() ([]models.Employee, error) {
	return []models.Employee{
		{
			FirstName:        "Ahmet",
			LastName:         "Sourtimes",
			Email:            "ahmet@sourtimes.org",
			Phone:            "+90 532 123 45 67",
			DateOfBirth:      "1990-09-23",
			DateOfEmployment: "2022-09-23",
			Department:       models.DepartmentAnalytics,
			Position:         models.PositionJunior,
		},
		{
			FirstName:        "Mehmet",
			LastName:         "Yilmaz",
			Email:            "mehmet@yilmaz.com",
			Phone:            "+90 555 234 56 78",
			DateOfBirth:      "1988-03-12",
			DateOfEmployment: "2021-06-15",
			Department:       models.DepartmentTech,
			Position:         models.PositionSenior,
		},
		{
			FirstName:        "Ayse",
			LastName:         "Demir",
			Email:            "ayse@demir.com",
			Phone:            "+90 544 345 67 89",
			DateOfBirth:      "1995-07-08",
			DateOfEmployment: "2023-01-10",
			Department:       models.DepartmentAnalytics,
			Position:         models.PositionMedior,
		},
		{
			FirstName:        "Fatma",
			LastName:         "Kaya",
			Email:            "fatma@kaya.com",
			Phone:            "+90 533 456 78 90",
			DateOfBirth:      "1992-11-20",
			DateOfEmployment: "2022-03-01",
			Department:       models.DepartmentTech,
			Position:         models.PositionMedior,
		},
		{
			FirstName:        "Ali",
			LastName:         "Ozturk",
			Email:            "ali@ozturk.com",
			Phone:            "+90 542 567 89 01",
			DateOfBirth:      "1985-05-15",
			DateOfEmployment: "2020-01-15",
			Department:       models.DepartmentAnalytics,
			Position:         models.PositionSenior,
		},
	}, nil
}

// None seeds nothing
type None struct{}

// Employees returns an empty collection
func (None) Employees() ([]models.Employee, error) { return nil, nil }

// EmployeeData is one seed record as written in a YAML seed file
type EmployeeData struct {
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Email            string `yaml:"email"`
	Phone            string `yaml:"phone"`
	DateOfBirth      string `yaml:"date_of_birth"`
	DateOfEmployment string `yaml:"date_of_employment"`
	Department       string `yaml:"department"`
	Position         string `yaml:"position"`
}

// EmployeesFile is the layout of a YAML seed file
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

// File reads seed records from a YAML file
type File struct {
	Path string
}

// Employees loads and converts the records in the file
func (f File) Employees() ([]models.Employee, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML seed data
func Parse(data []byte) ([]models.Employee, error) {
	var file EmployeesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make([]models.Employee, 0, len(file.Employees))
	for i, d := range file.Employees {
		if d.Email == "" {
			return nil, fmt.Errorf("seed employee %d: email is required", i)
		}
		out = append(out, models.Employee{
			FirstName:        d.FirstName,
			LastName:         d.LastName,
			Email:            d.Email,
			Phone:            d.Phone,
			DateOfBirth:      d.DateOfBirth,
			DateOfEmployment: d.DateOfEmployment,
			Department:       models.Department(d.Department),
			Position:         models.Position(d.Position),
		})
	}
	return out, nil
}

// FromConfig picks the provider for the configured seed settings
func FromConfig(enabled bool, path string) Provider {
	switch {
	case !enabled:
		return None{}
	case path != "":
		return File{Path: path}
	default:
		return Demo{}
	}
}
