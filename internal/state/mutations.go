package state

import (
	"context"
	"fmt"

	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/events"
	"employee-roster/internal/service"
)

type panicError struct {
	value any
}

func (e panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// AddEmployee validates data and adds it. Validation failures leave the
// collection untouched and report validation.failed with per-field keys.
func (s *Store) AddEmployee(ctx context.Context, data models.Employee) MutationResult {
	return s.runMutation(ctx, events.EmployeeAdded, func() MutationResult {
		validation := s.svc.Validate(data, false)
		if !validation.IsValid {
			return failed(apperrors.KeyValidationFailed, validation.Errors)
		}

		created, err := s.svc.Add(ctx, data)
		if err != nil {
			return failed(apperrors.KeyOf(err), nil)
		}
		return succeeded(created)
	})
}

// UpdateEmployee merges req into the employee with the given id after
// validating the merged record against the rest of the collection.
func (s *Store) UpdateEmployee(ctx context.Context, id string, req *service.UpdateEmployeeRequest) MutationResult {
	return s.runMutation(ctx, events.EmployeeUpdated, func() MutationResult {
		existing, ok := s.svc.GetByID(id)
		if !ok {
			return failed(apperrors.KeyEmployeeNotFound, nil)
		}

		validation := s.svc.Validate(req.ApplyTo(existing), true)
		if !validation.IsValid {
			return failed(apperrors.KeyValidationFailed, validation.Errors)
		}

		updated, err := s.svc.Update(ctx, id, req)
		if err != nil {
			return failed(apperrors.KeyOf(err), nil)
		}
		return succeeded(updated)
	})
}

// DeleteEmployee removes the employee with the given id. When the current
// page no longer exists it moves to the new last page.
func (s *Store) DeleteEmployee(ctx context.Context, id string) MutationResult {
	return s.runMutation(ctx, events.EmployeeDeleted, func() MutationResult {
		removed, err := s.svc.Delete(ctx, id)
		if err != nil {
			return failed(apperrors.KeyOf(err), nil)
		}
		return succeeded(removed)
	})
}

// ImportEmployees replaces the collection with an export blob
func (s *Store) ImportEmployees(ctx context.Context, raw []byte) MutationResult {
	return s.runMutation(ctx, "", func() MutationResult {
		count, err := s.svc.ImportAll(ctx, raw)
		if err != nil {
			return failed(apperrors.KeyOf(err), nil)
		}
		return MutationResult{Success: true, Count: count}
	})
}

// ClearEmployees empties the collection and its stored copy
func (s *Store) ClearEmployees(ctx context.Context) MutationResult {
	return s.runMutation(ctx, "", func() MutationResult {
		if err := s.svc.ClearAll(ctx); err != nil {
			return failed(apperrors.KeyOf(err), nil)
		}
		return MutationResult{Success: true}
	})
}

// runMutation wraps one CRUD sequence. saving is set for its duration and
// cleared on every path, panics included. On success the collection is
// reloaded from the service in the same commit that clears saving. Both
// changes are delivered to subscribers after the sequence lock is released,
// followed by the event when one is named.
func (s *Store) runMutation(ctx context.Context, event string, op func() MutationResult) (result MutationResult) {
	s.opMu.Lock()

	started := s.apply(ctx, func(st *State) []string {
		st.Saving = true
		st.Error = ""
		return []string{KeySaving, KeyError}
	})

	defer func() {
		if r := recover(); r != nil {
			s.log.WithContext(ctx).WithError(panicError{value: r}).Error("Employee mutation failed")
			result = failed(apperrors.KeySavingEmployee, nil)
		}

		var employees []models.Employee
		if result.Success {
			reloaded, err := s.loadEmployees()
			if err != nil {
				s.log.WithContext(ctx).WithError(err).Error("Failed to reload employees")
				result = failed(apperrors.KeyLoadingEmployees, nil)
			} else {
				employees = reloaded
			}
		}

		finished := s.apply(ctx, func(st *State) []string {
			st.Saving = false
			keys := []string{KeySaving}
			if result.Success {
				st.Employees = employees
				keys = append(keys, KeyEmployees)
			} else if result.Error != apperrors.KeyValidationFailed {
				st.Error = result.Error
				keys = append(keys, KeyError)
			}
			return keys
		})
		s.opMu.Unlock()

		started()
		finished()

		if result.Success && event != "" {
			s.emit(ctx, event, map[string]any{"employee": result.Employee})
		}
	}()

	return op()
}
