package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ttrack/internal/models"
)

// Confirmation prompts shown before destructive operations
const (
	DeleteProjectPrompt = "Delete this project? All time entries will remain."
	DeleteEntryPrompt   = "Delete this time entry?"
)

// Subscriber is notified after every state change.
// Subscribers run synchronously and must not call back into the Store.
type Subscriber func(prev, next State) error

// Confirmer asks the user to approve a destructive operation.
// A nil Confirmer approves without asking.
type Confirmer func(prompt string) bool

// Store holds the current State and applies operations to it
type Store struct {
	mu    sync.RWMutex
	state State

	subscribers []subscription
	nextSubID   int

	now   func() time.Time
	newID func(prefix string) string
}

type subscription struct {
	id int
	fn Subscriber
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now as the source of timer timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid-based id generator
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates a store holding the initial state
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{
		state: initial,
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a fresh id such as "proj_0f8fad5b-d9cb-469f-a165-70867728950e"
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// Now returns the store's current time
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn for state changes and returns a function that removes it
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// commit installs next and notifies subscribers. Callers hold s.mu.
func (s *Store) commit(next State) error {
	prev := s.state
	s.state = next

	var errs []error
	for _, sub := range s.subscribers {
		if err := sub.fn(prev, next); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset replaces the whole state, for example with seed data
func (s *Store) Reset(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(st)
}

// AddProject creates a project. Empty names are rejected without a state change.
func (s *Store) AddProject(name, description string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, p, err := AddProject(s.state, s.newID("proj"), name, description)
	if err != nil {
		return nil, err
	}
	return p, s.commit(next)
}

// UpdateProject renames a project and replaces its description
func (s *Store) UpdateProject(id, name, description string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, p, err := UpdateProject(s.state, id, name, description)
	if err != nil {
		return nil, err
	}
	return p, s.commit(next)
}

// DeleteProject removes a project after confirmation, leaving its entries in place.
// It reports whether the project was deleted.
func (s *Store) DeleteProject(id string, confirm Confirmer) (bool, error) {
	s.mu.RLock()
	_, ok := s.state.Project(id)
	s.mu.RUnlock()
	if !ok {
		return false, models.ErrProjectNotFound
	}

	// Ask without holding the lock
	if confirm != nil && !confirm(DeleteProjectPrompt) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := DeleteProject(s.state, id)
	if err != nil {
		return false, err
	}
	return true, s.commit(next)
}

// DeleteEntry removes a time entry after confirmation.
// It reports whether the entry was deleted.
func (s *Store) DeleteEntry(id string, confirm Confirmer) (bool, error) {
	s.mu.RLock()
	_, ok := s.state.Entry(id)
	s.mu.RUnlock()
	if !ok {
		return false, models.ErrEntryNotFound
	}

	if confirm != nil && !confirm(DeleteEntryPrompt) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := DeleteEntry(s.state, id)
	if err != nil {
		return false, err
	}
	return true, s.commit(next)
}

// StartTimer starts a timer for the project
func (s *Store) StartTimer(projectID string) (*models.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, e, err := StartTimer(s.state, s.newID("entry"), projectID, s.now())
	if err != nil {
		return e, err
	}
	return e, s.commit(next)
}

// StopTimer stops the project's running timer. It is a no-op returning nil when none runs.
func (s *Store) StopTimer(projectID string) (*models.TimeEntry, error) {
	return s.StopTimerWithNotes(projectID, "")
}

// StopTimerWithNotes stops the project's running timer and, when notes is not
// empty, records them on the entry. Both changes land in a single commit.
func (s *Store) StopTimerWithNotes(projectID, notes string) (*models.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, e := StopTimer(s.state, projectID, s.now())
	if e == nil {
		return nil, nil
	}

	if notes != "" {
		var err error
		if next, err = SetNotes(next, e.ID, notes); err != nil {
			return nil, err
		}
		e, _ = next.Entry(e.ID)
	}
	return e, s.commit(next)
}

// SetNotes replaces the notes of an entry
func (s *Store) SetNotes(entryID, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := SetNotes(s.state, entryID, notes)
	if err != nil {
		return err
	}
	return s.commit(next)
}
