package view

import (
	"sync"

	"github.com/albapepper/octofit-dashboard/internal/record"
)

// Selection tracks the one record currently shown in a detail panel. It is
// not tied to the fetch lifecycle: a selected record stays selected even if
// the view reloads with different data.
type Selection struct {
	mu        sync.RWMutex
	current   record.Record
	requested bool
}

// Select replaces any existing selection with r and requests the detail view.
func (s *Selection) Select(r record.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = r
	s.requested = true
}

// Clear drops the selection and the detail request.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.requested = false
}

// Current returns the selected record, if any.
func (s *Selection) Current() (record.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// DetailRequested reports whether a detail view should be shown.
func (s *Selection) DetailRequested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requested
}
