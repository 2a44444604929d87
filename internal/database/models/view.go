package models

// ViewMode selects how the roster is rendered
type ViewMode string

const (
	ViewModeTable ViewMode = "table"
	ViewModeList  ViewMode = "list"
)

// IsValid checks if the ViewMode is valid
func (v ViewMode) IsValid() bool {
	switch v {
	case ViewModeTable, ViewModeList:
		return true
	}
	return false
}

// SortOrder is the direction of the projection sort
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid checks if the SortOrder is valid
func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// SortField names a sortable employee attribute by its JSON name
type SortField string

const (
	SortFieldID               SortField = "id"
	SortFieldFirstName        SortField = "firstName"
	SortFieldLastName         SortField = "lastName"
	SortFieldEmail            SortField = "email"
	SortFieldPhone            SortField = "phone"
	SortFieldDateOfBirth      SortField = "dateOfBirth"
	SortFieldDateOfEmployment SortField = "dateOfEmployment"
	SortFieldDepartment       SortField = "department"
	SortFieldPosition         SortField = "position"
	SortFieldCreatedAt        SortField = "createdAt"
	SortFieldUpdatedAt        SortField = "updatedAt"
)

// IsValid checks if the SortField names a known attribute
func (f SortField) IsValid() bool {
	switch f {
	case SortFieldID, SortFieldFirstName, SortFieldLastName, SortFieldEmail, SortFieldPhone,
		SortFieldDateOfBirth, SortFieldDateOfEmployment, SortFieldDepartment, SortFieldPosition,
		SortFieldCreatedAt, SortFieldUpdatedAt:
		return true
	}
	return false
}

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 9
)

// PageSizeOptions are the page sizes offered to the user
var PageSizeOptions = []int{9, 18, 36, 72}

// Storage keys
const (
	StorageKeyEmployees = "emp_data"
	StorageKeyAppState  = "emp_app_state"
	StorageKeyLanguage  = "emp_language"
)

// Languages supported by the localization collaborator
const (
	LanguageEN = "en"
	LanguageTR = "tr"
)

// IsSupportedLanguage reports whether code is one of the supported languages
func IsSupportedLanguage(code string) bool {
	return code == LanguageEN || code == LanguageTR
}

// ViewPreferences is the persisted subset of the view state. The current
// page is deliberately not part of it.
type ViewPreferences struct {
	ViewMode     ViewMode  `json:"viewMode,omitempty"`
	ItemsPerPage int       `json:"itemsPerPage,omitempty"`
	SortBy       SortField `json:"sortBy,omitempty"`
	SortOrder    SortOrder `json:"sortOrder,omitempty"`
}
