package state

import "employee-roster/internal/database/models"

// TotalPages is ceil(total/perPage), never less than one
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return pages
}

// PageSlice returns a copy of the items shown on a 1-based page
func PageSlice(items []models.Employee, page, perPage int) []models.Employee {
	if page < 1 || perPage <= 0 {
		return []models.Employee{}
	}
	if len(items) == 0 || page-1 > (len(items)-1)/perPage {
		return []models.Employee{}
	}
	start := (page - 1) * perPage
	end := start + min(perPage, len(items)-start)
	return models.CloneEmployees(items[start:end])
}

// PageKeepingFirstItem returns the page that shows, at newPerPage items per
// page, the item that was first on page under oldPerPage.
func PageKeepingFirstItem(page, oldPerPage, newPerPage int) int {
	firstItem := (page - 1) * oldPerPage
	if firstItem < 0 || newPerPage <= 0 {
		return models.DefaultPage
	}
	return firstItem/newPerPage + 1
}
