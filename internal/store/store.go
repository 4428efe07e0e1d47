package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Source is the narrow read surface the store pulls appointments from.
type Source interface {
	// FetchUpcoming returns all appointments dated today or later,
	// ascending by start, with category and patient expanded.
	FetchUpcoming(ctx context.Context) ([]entity.Appointment, error)
	// FetchPast returns up to limit appointments starting strictly before
	// the given instant, descending by start.
	FetchPast(ctx context.Context, before time.Time, limit int) ([]entity.Appointment, error)
}

// Store is the canonical in-memory appointment list shared by all view
// projections. All mutations go through its enumerated methods; readers get
// copies, never the backing slice. Loads are guarded so at most one initial
// load and one past-page fetch are in flight at a time.
type Store struct {
	source       Source
	log          *logrus.Logger
	pastPageSize int

	mu           sync.Mutex
	appointments []entity.Appointment
	loading      bool
	loadingPast  bool
	subscribers  []func()
}

func New(source Source, log *logrus.Logger, pastPageSize int) *Store {
	if pastPageSize <= 0 {
		pastPageSize = 5
	}
	return &Store{
		source:       source,
		log:          log,
		pastPageSize: pastPageSize,
	}
}

// Subscribe registers fn to be called after every change to the list.
// Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a copy of the current appointment list.
func (s *Store) Snapshot() []entity.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]entity.Appointment, len(s.appointments))
	copy(snapshot, s.appointments)
	return snapshot
}

// Loading reports the in-flight state of the initial and past-page loads.
func (s *Store) Loading() (initial, past bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.loadingPast
}

// LoadInitial replaces the list with the upcoming appointments from the
// source. A failure is logged and leaves the list as it was. Concurrent
// calls beyond the first are no-ops while a load is in flight.
func (s *Store) LoadInitial(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	appointments, err := s.source.FetchUpcoming(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.log.Warnf("Failed to load upcoming appointments: %+v", err)
		return err
	}
	s.appointments = appointments
	s.mu.Unlock()

	s.notify()
	return nil
}

// Refresh re-runs the initial load.
func (s *Store) Refresh(ctx context.Context) error {
	return s.LoadInitial(ctx)
}

// LoadPast prepends one page of appointments dated before the current
// earliest entry. It is a no-op while the list is empty or another past
// fetch is in flight, so at most one request hits the source at a time.
// A failure is logged and leaves the list unchanged.
func (s *Store) LoadPast(ctx context.Context) error {
	s.mu.Lock()
	if len(s.appointments) == 0 || s.loadingPast {
		s.mu.Unlock()
		return nil
	}
	s.loadingPast = true
	earliest := s.earliestStartLocked()
	s.mu.Unlock()

	page, err := s.source.FetchPast(ctx, earliest, s.pastPageSize)

	s.mu.Lock()
	s.loadingPast = false
	if err != nil {
		s.mu.Unlock()
		s.log.Warnf("Failed to load past appointments: %+v", err)
		return err
	}
	if len(page) == 0 {
		s.mu.Unlock()
		return nil
	}
	// The source returns the page descending; restore ascending order
	// before prepending.
	reversed := make([]entity.Appointment, len(page))
	for i, appointment := range page {
		reversed[len(page)-1-i] = appointment
	}
	s.appointments = append(reversed, s.appointments...)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Add inserts an appointment and re-sorts the list ascending by start.
func (s *Store) Add(appointment entity.Appointment) {
	s.mu.Lock()
	s.appointments = append(s.appointments, appointment)
	s.sortLocked()
	s.mu.Unlock()

	s.notify()
}

// Patch carries the optional fields merged into an appointment by Update.
// Nil fields are left untouched.
type Patch struct {
	Title       *string
	Start       *time.Time
	End         *time.Time
	Location    *string
	Notes       *string
	CategoryID  *uuid.UUID
	Category    *entity.Category
	PatientID   *uuid.UUID
	Patient     *entity.Patient
	Attachments *[]string
}

// Update merges the patch into the entry with the given id. It reports
// whether an entry was found; an unknown id is a no-op.
func (s *Store) Update(id uuid.UUID, patch Patch) bool {
	s.mu.Lock()
	found := false
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		applyPatch(&s.appointments[i], patch)
		found = true
		break
	}
	if found && patch.Start != nil {
		s.sortLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
	return found
}

// Remove deletes the entry with the given id; an unknown id is a no-op.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	found := false
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
	return found
}

func applyPatch(appointment *entity.Appointment, patch Patch) {
	if patch.Title != nil {
		appointment.Title = *patch.Title
	}
	if patch.Start != nil {
		appointment.Start = *patch.Start
	}
	if patch.End != nil {
		appointment.End = *patch.End
	}
	if patch.Location != nil {
		appointment.Location = *patch.Location
	}
	if patch.Notes != nil {
		appointment.Notes = *patch.Notes
	}
	if patch.CategoryID != nil {
		appointment.CategoryID = *patch.CategoryID
	}
	if patch.Category != nil {
		appointment.Category = *patch.Category
	}
	if patch.PatientID != nil {
		appointment.PatientID = *patch.PatientID
	}
	if patch.Patient != nil {
		appointment.Patient = *patch.Patient
	}
	if patch.Attachments != nil {
		appointment.Attachments = entity.StringSlice(*patch.Attachments)
	}
}

func (s *Store) earliestStartLocked() time.Time {
	earliest := s.appointments[0].Start
	for _, appointment := range s.appointments[1:] {
		if appointment.Start.Before(earliest) {
			earliest = appointment.Start
		}
	}
	return earliest
}

func (s *Store) sortLocked() {
	sort.SliceStable(s.appointments, func(i, j int) bool {
		return s.appointments[i].Start.Before(s.appointments[j].Start)
	})
}

func (s *Store) notify() {
	s.mu.Lock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
