package state

import (
	"context"

	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/events"
	"employee-roster/internal/service"
)

// SetSort sorts by field, toggling to descending when the field is already
// sorted ascending and using ascending otherwise.
func (s *Store) SetSort(ctx context.Context, field models.SortField) error {
	if !field.IsValid() {
		return apperrors.ErrInvalidSortField
	}
	s.commit(ctx, func(st *State) []string {
		order := models.SortOrderAsc
		if st.SortBy == field && st.SortOrder == models.SortOrderAsc {
			order = models.SortOrderDesc
		}
		st.SortBy = field
		st.SortOrder = order
		return []string{KeySortBy, KeySortOrder}
	})
	return nil
}

// SetPage moves to page. Pages outside 1..GetTotalPages leave the state
// untouched and notify nobody.
func (s *Store) SetPage(ctx context.Context, page int) error {
	var applied bool
	s.commit(ctx, func(st *State) []string {
		if page < 1 || page > TotalPages(len(st.SortedEmployees), st.ItemsPerPage) {
			return nil
		}
		applied = true
		st.CurrentPage = page
		return []string{KeyCurrentPage}
	})
	if !applied {
		return apperrors.ErrInvalidPage
	}
	return nil
}

// SetItemsPerPage changes the page size and moves to the page that still
// shows the first item of the current page. Sizes outside PageSizeOptions
// are accepted.
func (s *Store) SetItemsPerPage(ctx context.Context, n int) error {
	if n <= 0 {
		return apperrors.ErrInvalidItemsPerPage
	}
	s.commit(ctx, func(st *State) []string {
		st.CurrentPage = PageKeepingFirstItem(st.CurrentPage, st.ItemsPerPage, n)
		st.ItemsPerPage = n
		return []string{KeyItemsPerPage, KeyCurrentPage}
	})
	return nil
}

// SetViewMode switches the view mode and also broadcasts view-mode-changed
// on the global bus for collaborators that do not subscribe to the store.
func (s *Store) SetViewMode(ctx context.Context, mode models.ViewMode) error {
	if !mode.IsValid() {
		return apperrors.ErrInvalidViewMode
	}
	s.commit(ctx, func(st *State) []string {
		st.ViewMode = mode
		return []string{KeyViewMode}
	})
	s.emit(ctx, events.ViewModeChanged, map[string]any{"viewMode": mode})
	return nil
}

// SetLanguage stores the language used by presentation collaborators and
// broadcasts language-changed. Setting the current language is a no-op.
func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	if !models.IsSupportedLanguage(lang) {
		return apperrors.ErrUnsupportedLanguage
	}
	var changed bool
	s.commit(ctx, func(st *State) []string {
		if st.Language == lang {
			return nil
		}
		changed = true
		st.Language = lang
		return []string{KeyLanguage}
	})
	if changed {
		s.emit(ctx, events.LanguageChanged, map[string]any{"language": lang})
	}
	return nil
}

// SelectEmployee marks e as the employee being viewed or edited. nil clears
// the selection.
func (s *Store) SelectEmployee(ctx context.Context, e *models.Employee) {
	var selected *models.Employee
	if e != nil {
		c := e.Clone()
		selected = &c
	}
	s.commit(ctx, func(st *State) []string {
		st.SelectedEmployee = selected
		return []string{KeySelectedEmployee}
	})
}

// Language returns the current language code
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Language
}

// GetPaginatedEmployees returns the current page of the sorted projection
func (s *Store) GetPaginatedEmployees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return PageSlice(s.state.SortedEmployees, s.state.CurrentPage, s.state.ItemsPerPage)
}

// GetTotalPages returns the number of pages, at least one
func (s *Store) GetTotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TotalPages(len(s.state.SortedEmployees), s.state.ItemsPerPage)
}

// Statistics summarises the collection
func (s *Store) Statistics() service.Statistics {
	return s.svc.Statistics()
}
