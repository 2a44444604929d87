// Package state holds the view state of the roster: the employee collection,
// its sorted projection, pagination, view preferences and the transient
// loading/saving flags. Consumers read snapshots and subscribe to changes;
// every change goes through a single commit path that recomputes derived
// state and persists the view preferences.
package state

import (
	"context"
	"encoding/json"
	"sync"

	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/events"
	"employee-roster/internal/logger"
	"employee-roster/internal/repository"
	"employee-roster/internal/service"
)

// Keys reported in Change.ChangedKeys
const (
	KeyEmployees        = "employees"
	KeySortedEmployees  = "sortedEmployees"
	KeySelectedEmployee = "selectedEmployee"
	KeyViewMode         = "viewMode"
	KeyCurrentPage      = "currentPage"
	KeyItemsPerPage     = "itemsPerPage"
	KeySortBy           = "sortBy"
	KeySortOrder        = "sortOrder"
	KeyLanguage         = "language"
	KeyLoading          = "loading"
	KeySaving           = "saving"
	KeyError            = "error"
)

// State is a snapshot of the view state. Error holds a message key, empty
// when there is none.
type State struct {
	Employees        []models.Employee `json:"employees"`
	SortedEmployees  []models.Employee `json:"-"`
	SelectedEmployee *models.Employee  `json:"selectedEmployee"`
	ViewMode         models.ViewMode   `json:"viewMode"`
	CurrentPage      int               `json:"currentPage"`
	ItemsPerPage     int               `json:"itemsPerPage"`
	SortBy           models.SortField  `json:"sortBy"`
	SortOrder        models.SortOrder  `json:"sortOrder"`
	Language         string            `json:"language"`
	Loading          bool              `json:"loading"`
	Saving           bool              `json:"saving"`
	Error            string            `json:"error,omitempty"`
}

func (s State) clone() State {
	out := s
	out.Employees = models.CloneEmployees(s.Employees)
	out.SortedEmployees = models.CloneEmployees(s.SortedEmployees)
	if s.SelectedEmployee != nil {
		e := s.SelectedEmployee.Clone()
		out.SelectedEmployee = &e
	}
	return out
}

// Preferences returns the persisted subset of the state
func (s State) Preferences() models.ViewPreferences {
	return models.ViewPreferences{
		ViewMode:     s.ViewMode,
		ItemsPerPage: s.ItemsPerPage,
		SortBy:       s.SortBy,
		SortOrder:    s.SortOrder,
	}
}

// Change is delivered to subscribers after every committed change
type Change struct {
	NewState    State
	OldState    State
	ChangedKeys []string
}

// Has reports whether key is among the changed keys
func (c Change) Has(key string) bool {
	for _, k := range c.ChangedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Listener receives changes synchronously. A listener may read the state and
// may start another mutation; CRUD notifications are delivered after the
// mutation has released the store, so a nested call sees the finished state.
type Listener func(Change)

// MutationResult is the outcome of a CRUD call. Error is a message key.
type MutationResult struct {
	Success  bool              `json:"success"`
	Employee *models.Employee  `json:"employee,omitempty"`
	Count    int               `json:"count,omitempty"`
	Error    string            `json:"error,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func succeeded(e models.Employee) MutationResult {
	return MutationResult{Success: true, Employee: &e}
}

func failed(key string, fields map[string]string) MutationResult {
	return MutationResult{Success: false, Error: key, Errors: fields}
}

// mutation edits the next state in place and returns the keys it touched
type mutation func(st *State) []string

// Store is the roster view state. Create it with NewStore and call Init once.
type Store struct {
	svc  service.EmployeeServiceInterface
	repo repository.KeyValueStoreInterface
	bus  *events.Bus
	log  *logger.Logger

	defaultLanguage string

	// opMu serialises CRUD sequences; mu guards state and listeners.
	opMu      sync.Mutex
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	order     []int
	nextID    int
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithBus sets the broadcast channel for global events
func WithBus(bus *events.Bus) StoreOption {
	return func(s *Store) { s.bus = bus }
}

// WithStoreLogger replaces the component logger
func WithStoreLogger(l *logger.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// WithDefaultLanguage sets the language used when none is stored
func WithDefaultLanguage(lang string) StoreOption {
	return func(s *Store) {
		if models.IsSupportedLanguage(lang) {
			s.defaultLanguage = lang
		}
	}
}

// NewStore creates a store over the employee service. repo holds the view
// preferences and language.
func NewStore(svc service.EmployeeServiceInterface, repo repository.KeyValueStoreInterface, opts ...StoreOption) *Store {
	s := &Store{
		svc:             svc,
		repo:            repo,
		bus:             events.NewBus(),
		log:             logger.ForComponent("state_store"),
		defaultLanguage: models.LanguageEN,
		listeners:       make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.initialState()
	return s
}

func (s *Store) initialState() State {
	return State{
		Employees:       []models.Employee{},
		SortedEmployees: []models.Employee{},
		ViewMode:        models.ViewModeTable,
		CurrentPage:     models.DefaultPage,
		ItemsPerPage:    models.DefaultPageSize,
		SortBy:          models.SortFieldFirstName,
		SortOrder:       models.SortOrderAsc,
		Language:        s.defaultLanguage,
	}
}

// Bus returns the broadcast channel the store emits on
func (s *Store) Bus() *events.Bus {
	return s.bus
}

// Init restores the view preferences and language, then loads the
// collection from the service.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	s.restorePreferences(ctx)
	s.restoreLanguage(ctx)
	s.mu.Unlock()

	s.commit(ctx, func(st *State) []string {
		st.Loading = true
		st.Error = ""
		return []string{KeyLoading, KeyError}
	})

	employees, loadErr := s.loadEmployees()
	s.commit(ctx, func(st *State) []string {
		st.Loading = false
		if loadErr != nil {
			st.Error = apperrors.KeyLoadingEmployees
			return []string{KeyLoading, KeyError}
		}
		st.Employees = employees
		return []string{KeyLoading, KeyEmployees}
	})
	if loadErr != nil {
		s.log.WithContext(ctx).WithError(loadErr).Error("Failed to load employees into state")
	}
}

func (s *Store) loadEmployees() (employees []models.Employee, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{value: r}
		}
	}()
	return s.svc.LoadAll(), nil
}

// restorePreferences applies stored preferences, skipping invalid values.
// Callers hold s.mu.
func (s *Store) restorePreferences(ctx context.Context) {
	raw, ok, err := s.repo.GetItem(ctx, models.StorageKeyAppState)
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to read view preferences")
		return
	}
	if !ok || raw == "" {
		return
	}

	var prefs models.ViewPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Stored view preferences are corrupt, using defaults")
		return
	}
	if prefs.ViewMode.IsValid() {
		s.state.ViewMode = prefs.ViewMode
	}
	if prefs.ItemsPerPage > 0 {
		s.state.ItemsPerPage = prefs.ItemsPerPage
	}
	if prefs.SortBy.IsValid() {
		s.state.SortBy = prefs.SortBy
	}
	if prefs.SortOrder.IsValid() {
		s.state.SortOrder = prefs.SortOrder
	}
}

// restoreLanguage applies the stored language. Callers hold s.mu.
func (s *Store) restoreLanguage(ctx context.Context) {
	lang, ok, err := s.repo.GetItem(ctx, models.StorageKeyLanguage)
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to read language")
		return
	}
	if ok && models.IsSupportedLanguage(lang) {
		s.state.Language = lang
	}
}

// GetState returns a copy of the current state
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. The returned function may be called any number of times,
// including from inside a notification.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// commit applies m to the state and notifies subscribers once the lock is
// released.
func (s *Store) commit(ctx context.Context, m mutation) {
	s.apply(ctx, m)()
}

// apply applies m to the state. When the collection or sort changed the
// projection is recomputed and the current page clamped to the last page.
// Preference and language changes are persisted. The returned func delivers
// the change to the subscribers registered at apply time; a mutation that
// touches no keys notifies nobody.
func (s *Store) apply(ctx context.Context, m mutation) func() {
	s.mu.Lock()
	old := s.state.clone()
	next := s.state
	keys := m(&next)
	if len(keys) == 0 {
		s.mu.Unlock()
		return func() {}
	}

	touched := make(map[string]bool, len(keys))
	for _, k := range keys {
		touched[k] = true
	}

	if touched[KeyEmployees] || touched[KeySortBy] || touched[KeySortOrder] {
		next.SortedEmployees = Project(next.Employees, next.SortBy, next.SortOrder)
		keys = append(keys, KeySortedEmployees)
		if last := TotalPages(len(next.SortedEmployees), next.ItemsPerPage); next.CurrentPage > last {
			next.CurrentPage = last
			if !touched[KeyCurrentPage] {
				keys = append(keys, KeyCurrentPage)
			}
		}
	}

	s.state = next

	if touched[KeyViewMode] || touched[KeyItemsPerPage] || touched[KeySortBy] || touched[KeySortOrder] {
		s.savePreferences(ctx, next.Preferences())
	}
	if touched[KeyLanguage] {
		if err := s.repo.SetItem(ctx, models.StorageKeyLanguage, next.Language); err != nil {
			s.log.WithContext(ctx).WithError(err).Warn("Failed to save language")
		}
	}

	change := Change{NewState: next.clone(), OldState: old, ChangedKeys: keys}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	return func() {
		for _, fn := range listeners {
			s.notify(ctx, fn, change)
		}
	}
}

func (s *Store) notify(ctx context.Context, fn Listener, change Change) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithContext(ctx).WithError(panicError{value: r}).Error("State listener panicked")
		}
	}()
	fn(change)
}

func (s *Store) savePreferences(ctx context.Context, prefs models.ViewPreferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to encode view preferences")
		return
	}
	if err := s.repo.SetItem(ctx, models.StorageKeyAppState, string(data)); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to save view preferences")
	}
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}

func (s *Store) emit(ctx context.Context, name string, payload any) {
	if err := s.bus.Emit(ctx, events.Event{Name: name, Payload: payload}); err != nil {
		s.log.WithContext(ctx).WithError(err).WithField("event", name).Warn("Event hook failed")
	}
}

// Reset drops every subscriber and returns the state to its defaults. Stored
// data is left alone; call Init to load it again.
func (s *Store) Reset() {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.initialState()
	s.listeners = make(map[int]Listener)
	s.order = nil
}
