package state

import (
	"slices"
	"strings"
	"time"

	"employee-roster/internal/database/models"
)

// Project returns a copy of employees sorted by field. The sort is stable in
// both directions: descending order flips the comparison, not the input, so
// equal keys keep their original relative order.
func Project(employees []models.Employee, sortBy models.SortField, order models.SortOrder) []models.Employee {
	out := models.CloneEmployees(employees)
	if out == nil {
		out = []models.Employee{}
	}

	slices.SortStableFunc(out, func(a, b models.Employee) int {
		c := compareField(a, b, sortBy)
		if order == models.SortOrderDesc {
			return -c
		}
		return c
	})
	return out
}

// compareField orders text and ISO date fields lexicographically and
// timestamps chronologically, with missing timestamps first.
func compareField(a, b models.Employee, field models.SortField) int {
	switch field {
	case models.SortFieldCreatedAt:
		return compareTime(a.CreatedAt, b.CreatedAt)
	case models.SortFieldUpdatedAt:
		return compareTime(a.UpdatedAt, b.UpdatedAt)
	}
	return strings.Compare(fieldValue(a, field), fieldValue(b, field))
}

func fieldValue(e models.Employee, field models.SortField) string {
	switch field {
	case models.SortFieldID:
		return e.ID
	case models.SortFieldFirstName:
		return e.FirstName
	case models.SortFieldLastName:
		return e.LastName
	case models.SortFieldEmail:
		return e.Email
	case models.SortFieldPhone:
		return e.Phone
	case models.SortFieldDateOfBirth:
		return e.DateOfBirth
	case models.SortFieldDateOfEmployment:
		return e.DateOfEmployment
	case models.SortFieldDepartment:
		return string(e.Department)
	case models.SortFieldPosition:
		return string(e.Position)
	}
	return ""
}

func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
