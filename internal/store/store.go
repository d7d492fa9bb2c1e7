package store

import (
	"strings"
	"sync"

	"github.com/your-org/roster/pkg/types"
)

// RecordStore owns the in-memory student collection and the id sequence.
// Insertion order is display order. Every read hands back independent copies,
// so callers can never mutate stored state through a returned value.
//
// The shipped binary drives the store from a single event loop, but the mutex
// keeps the operations safe should a caller ever dispatch from more than one
// goroutine.
type RecordStore struct {
	mu       sync.RWMutex
	students []types.Student
	nextID   int
}

// New creates an empty store. IDs start at 1.
func New() *RecordStore {
	return &RecordStore{nextID: 1}
}

// NewSeeded creates a store pre-populated with the given seed entries, in order.
func NewSeeded(seed []Seed) *RecordStore {
	rs := New()
	for _, s := range seed {
		rs.Create(s.Name, s.Email, s.GPA)
	}
	return rs
}

// Create appends a new student with the next id and returns a copy of it.
// Fields are assumed to be validated by the caller; Create never fails.
func (rs *RecordStore) Create(name, email string, gpa float64) types.Student {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	student := types.Student{
		ID:    rs.nextID,
		Name:  name,
		Email: email,
		GPA:   gpa,
	}
	rs.nextID++
	rs.students = append(rs.students, student)

	return student
}

// List returns a copy of all students in insertion order.
func (rs *RecordStore) List() []types.Student {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]types.Student, len(rs.students))
	copy(out, rs.students)
	return out
}

// FindByID returns a copy of the student with the given id, or false when no
// such student exists. Absence is not an error.
func (rs *RecordStore) FindByID(id int) (types.Student, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	for _, s := range rs.students {
		if s.ID == id {
			return s, true
		}
	}
	return types.Student{}, false
}

// Update overwrites the mutable fields of the student with the given id and
// returns true. When the id does not resolve it mutates nothing and returns
// false. The id itself is never altered.
func (rs *RecordStore) Update(id int, name, email string, gpa float64) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for i := range rs.students {
		if rs.students[i].ID == id {
			rs.students[i].Name = name
			rs.students[i].Email = email
			rs.students[i].GPA = gpa
			return true
		}
	}
	return false
}

// Delete removes the student with the given id and returns true iff a removal
// occurred.
func (rs *RecordStore) Delete(id int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for i := range rs.students {
		if rs.students[i].ID == id {
			rs.students = append(rs.students[:i], rs.students[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns copies of all students whose name contains the given text,
// case-insensitive, in insertion order. An empty pattern matches everything.
func (rs *RecordStore) Search(substr string) []types.Student {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	needle := strings.ToLower(substr)
	out := make([]types.Student, 0, len(rs.students))
	for _, s := range rs.students {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the number of students currently stored.
func (rs *RecordStore) Count() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return len(rs.students)
}
