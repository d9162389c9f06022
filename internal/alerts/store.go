package alerts

import (
	"sync"

	"safety-dashboard-go/internal/metrics"
	"safety-dashboard-go/internal/models"
)

// DefaultMaxAlerts bounds the in-memory buffer when no capacity is configured
const DefaultMaxAlerts = 100

// Store is a bounded, newest-first, in-memory collection of alerts. It is the
// single source of truth for alert state: all reads hand out value copies and
// lifecycle changes go through ResolveActive, so callers never share mutable
// records with the store.
type Store struct {
	mu       sync.RWMutex
	alerts   []models.Alert
	capacity int
}

// NewStore creates a store holding at most capacity alerts
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultMaxAlerts
	}
	return &Store{
		alerts:   make([]models.Alert, 0, capacity),
		capacity: capacity,
	}
}

// Insert prepends the alert. When the buffer is full the oldest entry is
// evicted. Insert always succeeds.
func (s *Store) Insert(alert models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append([]models.Alert{alert}, s.alerts...)
	if len(s.alerts) > s.capacity {
		s.alerts = s.alerts[:s.capacity]
		metrics.AlertsEvicted.Inc()
	}
}

// FindActiveByID returns a copy of the active alert with the given id.
// Resolved or absent alerts are not found.
func (s *Store) FindActiveByID(id string) (models.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id && s.alerts[i].IsActive() {
			return s.alerts[i], true
		}
	}
	return models.Alert{}, false
}

// ResolveActive marks the active alert with the given id as resolved and
// stamps resolvedAt. Returns a copy of the mutated record, or false when no
// active alert matches (absent or already resolved).
func (s *Store) ResolveActive(id, resolvedAt string) (models.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id && s.alerts[i].IsActive() {
			s.alerts[i].Status = models.AlertStatusResolved
			s.alerts[i].ResolvedAt = resolvedAt
			return s.alerts[i], true
		}
	}
	return models.Alert{}, false
}

// Snapshot returns a copy of the full collection, newest-first
func (s *Store) Snapshot() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Alert, len(s.alerts))
	copy(snapshot, s.alerts)
	return snapshot
}

// Clear empties the collection unconditionally
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = s.alerts[:0]
}

// Len returns the number of stored alerts
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.alerts)
}
