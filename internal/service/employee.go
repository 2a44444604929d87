package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"employee-roster/internal/clock"
	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/logger"
	"employee-roster/internal/repository"
	"employee-roster/internal/seed"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ExportVersion is the format version written into export blobs
const ExportVersion = "1.0"

// EmployeeService owns the employee collection: validation, CRUD and
// persistence of the whole collection under a single storage key.
type EmployeeService struct {
	repo      repository.KeyValueStoreInterface
	validator *validator.Validate
	clock     clock.Clock
	seed      seed.Provider
	newID     func() string
	log       *logger.Logger

	mu        sync.RWMutex
	employees []models.Employee
}

// Option configures an EmployeeService
type Option func(*EmployeeService)

// WithSeed sets the provider used when storage holds no collection yet
func WithSeed(p seed.Provider) Option {
	return func(s *EmployeeService) { s.seed = p }
}

// WithLogger replaces the component logger
func WithLogger(l *logger.Logger) Option {
	return func(s *EmployeeService) { s.log = l }
}

// WithIDGenerator replaces the uuid based id generator
func WithIDGenerator(fn func() string) Option {
	return func(s *EmployeeService) { s.newID = fn }
}

// NewEmployeeService creates a new employee service. Call Init before use.
func NewEmployeeService(repo repository.KeyValueStoreInterface, validator *validator.Validate, clk clock.Clock, opts ...Option) *EmployeeService {
	s := &EmployeeService{
		repo:      repo,
		validator: validator,
		clock:     clk,
		seed:      seed.Demo{},
		newID:     uuid.NewString,
		log:       logger.ForComponent("employee_service"),
		employees: []models.Employee{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateEmployeeRequest carries a partial update. Nil fields are left as is.
type UpdateEmployeeRequest struct {
	FirstName        *string            `json:"firstName"`
	LastName         *string            `json:"lastName"`
	Email            *string            `json:"email"`
	Phone            *string            `json:"phone"`
	DateOfBirth      *string            `json:"dateOfBirth"`
	DateOfEmployment *string            `json:"dateOfEmployment"`
	Department       *models.Department `json:"department"`
	Position         *models.Position   `json:"position"`
}

// ApplyTo returns a copy of e with the non-nil request fields merged in
func (r *UpdateEmployeeRequest) ApplyTo(e models.Employee) models.Employee {
	out := e.Clone()
	if r == nil {
		return out
	}
	if r.FirstName != nil {
		out.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		out.LastName = *r.LastName
	}
	if r.Email != nil {
		out.Email = *r.Email
	}
	if r.Phone != nil {
		out.Phone = *r.Phone
	}
	if r.DateOfBirth != nil {
		out.DateOfBirth = *r.DateOfBirth
	}
	if r.DateOfEmployment != nil {
		out.DateOfEmployment = *r.DateOfEmployment
	}
	if r.Department != nil {
		out.Department = *r.Department
	}
	if r.Position != nil {
		out.Position = *r.Position
	}
	return out
}

// Statistics summarises the collection
type Statistics struct {
	Total           int                       `json:"total"`
	ByDepartment    map[models.Department]int `json:"byDepartment"`
	ByPosition      map[models.Position]int   `json:"byPosition"`
	AverageAgeYears int                       `json:"averageAge"`
}

// ExportBlob is the portable form of the whole collection
type ExportBlob struct {
	Employees  []models.Employee `json:"employees"`
	ExportedAt time.Time         `json:"exportedAt"`
	Version    string            `json:"version"`
}

// Init loads the collection from storage. When nothing is stored yet the
// seed records are assigned ids, persisted and used. A failed read or a
// corrupt blob leaves the service with an empty collection.
func (s *EmployeeService) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.repo.GetItem(ctx, models.StorageKeyEmployees)
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Error("Failed to read employees from storage")
		s.employees = []models.Employee{}
		return
	}

	if !ok || raw == "" {
		s.employees = s.seedEmployees(ctx)
		s.persistLocked(ctx)
		return
	}

	var stored []models.Employee
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.WithContext(ctx).WithError(err).Error("Stored employees are corrupt, starting empty")
		s.employees = []models.Employee{}
		return
	}
	if stored == nil {
		stored = []models.Employee{}
	}
	s.employees = stored
	s.log.WithContext(ctx).WithField("count", len(stored)).Info("Loaded employees from storage")
}

func (s *EmployeeService) seedEmployees(ctx context.Context) []models.Employee {
	records, err := s.seed.Employees()
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Error("Failed to load seed employees")
		return []models.Employee{}
	}

	now := s.clock.Now()
	out := make([]models.Employee, 0, len(records))
	for _, r := range records {
		e := r.Clone()
		if e.ID == "" {
			e.ID = s.newID()
		}
		e.CreatedAt = timePtr(now)
		e.UpdatedAt = timePtr(now)
		out = append(out, e)
	}
	s.log.WithContext(ctx).WithField("count", len(out)).Info("Seeded employees")
	return out
}

// LoadAll returns a copy of the collection in insertion order
func (s *EmployeeService) LoadAll() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneEmployees(s.employees)
}

// GetByID returns a copy of the employee with the given id
func (s *EmployeeService) GetByID(id string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.employees[i].Clone(), true
	}
	return models.Employee{}, false
}

// Add appends a new employee with a fresh id and timestamps. The record is
// not validated here; callers run Validate first.
func (s *EmployeeService) Add(ctx context.Context, data models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	e := data.Clone()
	e.ID = s.newID()
	e.CreatedAt = timePtr(now)
	e.UpdatedAt = timePtr(now)

	s.employees = append(s.employees, e)
	s.persistLocked(ctx)

	s.log.WithContext(ctx).WithField("employee_id", e.ID).Info("Employee added")
	return e.Clone(), nil
}

// Update merges req into the employee with the given id
func (s *EmployeeService) Update(ctx context.Context, id string, req *UpdateEmployeeRequest) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Employee{}, apperrors.NewEmployeeNotFoundError(id)
	}

	updated := req.ApplyTo(s.employees[i])
	updated.ID = id
	updated.UpdatedAt = timePtr(s.clock.Now())

	s.employees[i] = updated
	s.persistLocked(ctx)

	s.log.WithContext(ctx).WithField("employee_id", id).Info("Employee updated")
	return updated.Clone(), nil
}

// Delete removes the employee with the given id and returns it
func (s *EmployeeService) Delete(ctx context.Context, id string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Employee{}, apperrors.NewEmployeeNotFoundError(id)
	}

	removed := s.employees[i]
	s.employees = append(s.employees[:i:i], s.employees[i+1:]...)
	s.persistLocked(ctx)

	s.log.WithContext(ctx).WithField("employee_id", id).Info("Employee deleted")
	return removed, nil
}

// Statistics computes counts per department and position and the rounded
// average age of employees with a parseable date of birth.
func (s *EmployeeService) Statistics() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Statistics{
		Total:        len(s.employees),
		ByDepartment: make(map[models.Department]int),
		ByPosition:   make(map[models.Position]int),
	}

	now := s.clock.Now()
	var ageSum float64
	var aged int
	for _, e := range s.employees {
		stats.ByDepartment[e.Department]++
		stats.ByPosition[e.Position]++
		if birth, ok := parseDate(e.DateOfBirth); ok {
			ageSum += ageYears(birth, now)
			aged++
		}
	}
	if aged > 0 {
		stats.AverageAgeYears = int(math.Round(ageSum / float64(aged)))
	}
	return stats
}

// ExportAll snapshots the collection for download
func (s *EmployeeService) ExportAll() ExportBlob {
	return ExportBlob{
		Employees:  s.LoadAll(),
		ExportedAt: s.clock.Now(),
		Version:    ExportVersion,
	}
}

// ImportAll replaces the collection with the employees in raw, a JSON export
// blob. Nothing changes when the blob is malformed. Identifiers are kept;
// records without one are given a fresh id.
func (s *EmployeeService) ImportAll(ctx context.Context, raw []byte) (int, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0, apperrors.NewImportFormatError("payload is not a JSON object")
	}

	list, ok := envelope["employees"]
	if !ok {
		return 0, apperrors.NewImportFormatError("employees is missing")
	}
	trimmed := bytes.TrimSpace(list)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, apperrors.NewImportFormatError("employees must be an array")
	}

	var imported []models.Employee
	if err := json.Unmarshal(trimmed, &imported); err != nil {
		return 0, apperrors.NewImportFormatError(fmt.Sprintf("employees could not be decoded: %v", err))
	}
	for i := range imported {
		if imported[i].ID == "" {
			imported[i].ID = s.newID()
		}
	}
	if imported == nil {
		imported = []models.Employee{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = imported
	s.persistLocked(ctx)

	s.log.WithContext(ctx).WithField("count", len(imported)).Info("Employees imported")
	return len(imported), nil
}

// ClearAll empties the collection and removes it from storage. The next Init
// seeds again.
func (s *EmployeeService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = []models.Employee{}
	if err := s.repo.RemoveItem(ctx, models.StorageKeyEmployees); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to remove employees from storage")
		return apperrors.NewPersistenceError("remove", models.StorageKeyEmployees, err)
	}
	return nil
}

// persistLocked writes the whole collection. Failures are logged and the
// in-memory state is kept. Callers hold s.mu.
func (s *EmployeeService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.employees)
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to encode employees")
		return
	}
	if err := s.repo.SetItem(ctx, models.StorageKeyEmployees, string(data)); err != nil {
		s.log.WithContext(ctx).WithError(apperrors.NewPersistenceError("save", models.StorageKeyEmployees, err)).
			Warn("Failed to save employees, keeping in-memory state")
	}
}

func (s *EmployeeService) indexOf(id string) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func timePtr(t time.Time) *time.Time {
	return &t
}
